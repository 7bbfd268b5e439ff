package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestIconCandidates(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"48x48/apps/firefox.png",
		"256x256/apps/firefox.png",
		"scalable/apps/firefox.svg",
		"48x48/apps/other.png",
	} {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	got := iconCandidates("firefox", []string{dir})
	if len(got) != 3 {
		t.Fatalf("Expected 3 candidates, got %v", got)
	}
	if got[0] != filepath.Join(dir, "256x256/apps/firefox.png") {
		t.Errorf("Largest icon should come first, got %s", got[0])
	}

	if abs := iconCandidates("/opt/app/icon.png", []string{dir}); len(abs) != 1 || abs[0] != "/opt/app/icon.png" {
		t.Errorf("Absolute paths are used as is, got %v", abs)
	}
	if bad := iconCandidates("fire*", []string{dir}); len(bad) != 0 {
		t.Errorf("Glob characters must not be expanded, got %v", bad)
	}
}

func TestIconCache_Fallback(t *testing.T) {
	test.NewApp()
	cache := NewIconCache()
	cache.dirs = []string{t.TempDir()}

	if res := cache.Resource(""); res.Name() != theme.ComputerIcon().Name() {
		t.Error("Empty handle should use the fallback icon")
	}
	if res := cache.Resource("does-not-exist"); res.Name() != theme.ComputerIcon().Name() {
		t.Error("Unknown icon should use the fallback icon")
	}
}
