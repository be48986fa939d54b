package util

import (
	"path/filepath"
	"testing"
)

func TestGetXDGConfigDir_XDGSet(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := GetXDGConfigDir()
	if err != nil {
		t.Fatalf("GetXDGConfigDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "themestudio"); got != want {
		t.Errorf("GetXDGConfigDir() = %q, want %q", got, want)
	}
}

func TestGetXDGConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	got, err := GetXDGConfigDir()
	if err != nil {
		t.Fatalf("GetXDGConfigDir() error = %v", err)
	}
	if want := filepath.Join("/home/tester", ".config", "themestudio"); got != want {
		t.Errorf("GetXDGConfigDir() = %q, want %q", got, want)
	}
}
