package helpers

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

func GetInstallMethod() string {
	dir, err := GetConfigDir()
	if err != nil {
		return "unknown"
	}

	file, err := os.Open(filepath.Join(dir, ".installed-by"))
	if err != nil {
		return "unknown"
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "method=") {
			return strings.TrimPrefix(line, "method=")
		}
	}

	return "unknown"
}

func IsHomebrewInstall() bool {
	return GetInstallMethod() == "homebrew"
}

// GetInstallPath resolves the running binary, following symlinks.
func GetInstallPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return exe
	}
	return resolved
}
