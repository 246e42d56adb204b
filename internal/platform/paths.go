package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppID identifies the application to Fyne and names its data directory
const AppID = "com.ytget.rm-browser"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Database file placed under the app data directory
const (
	FavoritesDBName = "favorites.db"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// isAndroid checks multiple ways to detect an Android environment
func isAndroid() bool {
	return runtime.GOOS == "android" ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// GetAppDataDir returns the per-user directory for application data
func GetAppDataDir(appID string) (string, error) {
	if appID == "" {
		return "", fmt.Errorf("empty app id specified")
	}

	if isAndroid() {
		if dir := os.Getenv("FILESDIR"); dir != "" {
			return filepath.Join(dir, appID), nil
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appID), nil
}

// ResolveFavoritesDBPath returns path when set, otherwise the default database
// location under the app data directory. The parent directory is created.
func ResolveFavoritesDBPath(path, appID string) (string, error) {
	if path == "" {
		dir, err := GetAppDataDir(appID)
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, FavoritesDBName)
	}

	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return path, nil
}
