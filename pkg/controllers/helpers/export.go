package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}

// DefaultExportPath returns the default path for exporting diagnostics.
func DefaultExportPath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(os.TempDir(), appName, "diagnostics-"+timestamp+".log")
}

// ExportLines writes lines to path, stripping ANSI codes.
func ExportLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(joinPlain(lines)), 0o644)
}

// CopyLinesToClipboard copies lines to the system clipboard, stripping ANSI codes.
func CopyLinesToClipboard(lines []string) error {
	return clipboard.WriteAll(joinPlain(lines))
}

func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func joinPlain(lines []string) string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, StripANSI(line))
	}
	return strings.Join(cleaned, "\n")
}
