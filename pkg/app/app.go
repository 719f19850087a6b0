// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/embedded"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/scenes"
	"github.com/decker502/flagfield/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "flagfield"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// RulesPath 外部规则文件路径，为空则使用嵌入的 data/rules.yaml
	RulesPath string
	// NoSettings 不读写界面偏好
	NoSettings bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入规则时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	rules, err := LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("规则加载失败: %w", err)
	}
	log.Printf("[App] 规则加载完成: %d 支队伍, 每队 %d 面旗帜", len(rules.Teams), rules.FlagsPerTeam)

	var settings *game.SettingsManager
	if cfg.NoSettings {
		settings, err = game.NewSettingsManager(nil)
	} else {
		settings, err = game.NewSettingsManager(game.OpenSettingsStorage(AppName))
	}
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	scene, err := scenes.NewFieldScene(rules, settings, utils.NewDragManager())
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// LoadRules 加载规则配置
//
// 优先级：
//  1. path 指定的外部文件
//  2. 嵌入的 data/rules.yaml
//  3. 内置默认规则（嵌入资源未初始化时）
func LoadRules(path string) (*config.RulesConfig, error) {
	if path != "" {
		return config.LoadRulesConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] 嵌入资源未初始化，使用内置默认规则")
		return config.DefaultRulesConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.RulesPath)
	if err != nil {
		return nil, err
	}
	return config.ParseRulesConfig(data)
}

// Settings 返回界面偏好管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// 移动端没有键盘，不处理快捷键
	if !utils.IsMobile() {
		a.handleHotkeys()
	}

	a.sceneManager.Update(config.TickDeltaTime)
	return nil
}

// handleHotkeys F11 切换全屏，F3 切换调试信息
func (a *App) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		shown := a.settings.ToggleDebugOverlay()
		log.Printf("[App] Debug overlay: %v", shown)
		a.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		shown := a.settings.ToggleCenterArea()
		log.Printf("[App] Center area: %v", shown)
		a.saveSettings()
	}
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，场地随之重新布局；过小的窗口按最小场地尺寸缩放显示
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := FieldSize(outsideWidth, outsideHeight)
	a.sceneManager.Resize(width, height)
	return width, height
}

// FieldSize 把宿主尺寸换算为场地尺寸（不小于最小场地）
func FieldSize(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, config.MinFieldWidth), max(outsideHeight, config.MinFieldHeight)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

