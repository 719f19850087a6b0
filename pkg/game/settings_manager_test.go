package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowDebugOverlay {
		t.Error("ShowDebugOverlay: got true, want false")
	}
	if !settings.ShowCenterArea {
		t.Error("ShowCenterArea: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail, got %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_flagfield_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	if !sm1.ToggleDebugOverlay() {
		t.Error("ToggleDebugOverlay should return true after first toggle")
	}
	if sm1.ToggleCenterArea() {
		t.Error("ToggleCenterArea should return false after first toggle")
	}

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowDebugOverlay {
		t.Error("Loaded ShowDebugOverlay: got false, want true")
	}
	if settings.ShowCenterArea {
		t.Error("Loaded ShowCenterArea: got true, want false")
	}
}

// TestSettingsLoadCorruptData 测试存档损坏时回退默认值
func TestSettingsLoadCorruptData(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_flagfield_corrupt",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [not a bool")); err != nil {
		t.Fatalf("Failed to write corrupt settings: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() should not fail on corrupt data: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Corrupt settings should fall back to defaults")
	}
}
