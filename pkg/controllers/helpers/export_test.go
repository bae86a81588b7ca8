package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"a\x1b[1;33mb\x1b[0mc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripANSI(tt.in); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.log")
	if err := ExportLines(path, []string{"\x1b[31mone\x1b[0m", "two"}); err != nil {
		t.Fatalf("ExportLines() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo" {
		t.Errorf("exported %q, want %q", data, "one\ntwo")
	}
}
