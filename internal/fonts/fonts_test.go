package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"Inter/Inter-Regular.ttf",
		"Inter/Inter-Bold.TTF",
		"Mono/Mono.otf",
		"readme.txt",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ScanDir() found %d files (%v), want 3", len(got), got)
	}
	for _, rel := range got {
		if filepath.IsAbs(rel) {
			t.Errorf("ScanDir() returned absolute path %q", rel)
		}
	}
}

func TestScanDirMissing(t *testing.T) {
	got, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ScanDir() of missing dir error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ScanDir() of missing dir = %v, want empty", got)
	}
}

func TestNormalizeForMatch(t *testing.T) {
	type tc struct {
		in, want string
	}

	tests := map[string]tc{
		"lowercases":    {in: "Inter", want: "inter"},
		"strips dashes": {in: "Inter-Regular", want: "interregular"},
		"strips spaces": {in: "Google Sans", want: "googlesans"},
		"strips scores": {in: "Google_Sans_Code", want: "googlesanscode"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := normalizeForMatch(tt.in); got != tt.want {
				t.Errorf("normalizeForMatch(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
