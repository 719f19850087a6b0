//go:build !android

package utils

// EnsureStorageDir 非 Android 平台的空实现
// gdata 在桌面和浏览器上会自行创建存储位置
func EnsureStorageDir(subdir string) error {
	return nil
}
