package helper

import (
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the directories searched for configuration files.
const ConfigDirEnv = "PHONGTRO_CONFIG_DIR"

const fallbackCfgDir = "/etc/phongtro"

// GetCfgPath resolves a configuration file name to a path.
//
// Lookup order:
//  1. absolute paths are returned untouched
//  2. $PHONGTRO_CONFIG_DIR/{filename}
//  3. ./{filename}, then ./configs/{filename}
//  4. /etc/phongtro/{filename}
func GetCfgPath(filename string) string {
	if filename == "" {
		panic("filename cannot be empty")
	}
	if filepath.IsAbs(filename) {
		return filename
	}

	var dirs []string
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		dirs = append(dirs, dir)
	}
	if wd, err := os.Getwd(); err == nil && wd != "" {
		dirs = append(dirs, wd, filepath.Join(wd, "configs"))
	}

	for _, dir := range dirs {
		if p, ok := existing(filepath.Join(dir, filename)); ok {
			return p
		}
	}
	return filepath.Join(fallbackCfgDir, filename)
}

func existing(path string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return abs, true
}
