package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsCompressedFile(t *testing.T) {
	tests := map[string]bool{
		"core_libretro.so.zip": true,
		"core_libretro.so.ZIP": true,
		"core_libretro.7z":     true,
		"core_libretro.apk":    true,
		"core_libretro.so":     false,
		"core_libretro.dll":    false,
		"zip":                  false,
	}

	for path, want := range tests {
		if got := IsCompressedFile(path); got != want {
			t.Errorf("IsCompressedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestRemoveExtension(t *testing.T) {
	tests := map[string]string{
		"/cores/a_libretro.so.zip": "/cores/a_libretro.so",
		"/cores/a_libretro.so":     "/cores/a_libretro",
		"/cores/a_libretro":        "/cores/a_libretro",
		"/dir.d/a_libretro":        "/dir.d/a_libretro",
	}

	for path, want := range tests {
		if got := RemoveExtension(path); got != want {
			t.Errorf("RemoveExtension(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestStripPlatformSuffix(t *testing.T) {
	tests := map[string]string{
		"/info/mgba_libretro_android": "/info/mgba_libretro",
		"/info/mgba_libretro":         "/info/mgba_libretro",
		"/info/mgba":                  "/info/mgba",
		"/info/pcsx_rearmed_libretro": "/info/pcsx_rearmed_libretro",
		"/in_fo/mgba":                 "/in_fo/mgba",
		"/info/core_libretro_":        "/info/core_libretro",
	}

	for path, want := range tests {
		if got := StripPlatformSuffix(path); got != want {
			t.Errorf("StripPlatformSuffix(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base, name, want string
	}{
		{"http://host/cores", "a.zip", "http://host/cores/a.zip"},
		{"http://host/cores/", "/a.zip", "http://host/cores/a.zip"},
		{"", "a.zip", "a.zip"},
	}

	for _, tt := range tests {
		if got := JoinURL(tt.base, tt.name); got != tt.want {
			t.Errorf("JoinURL(%q, %q) = %q, want %q", tt.base, tt.name, got, tt.want)
		}
	}
}

func TestResolveRealPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.so")
	link := filepath.Join(dir, "link.so")

	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write target: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("Failed to resolve target: %v", err)
	}

	if got := ResolveRealPath(link, true); got != resolved {
		t.Errorf("ResolveRealPath(link, true) = %q, want %q", got, resolved)
	}

	if got := ResolveRealPath(link, false); got != link {
		t.Errorf("ResolveRealPath(link, false) = %q, want %q", got, link)
	}

	missing := filepath.Join(dir, "sub", "..", "missing.so")
	want := filepath.Join(dir, "missing.so")
	if got := ResolveRealPath(missing, true); got != want {
		t.Errorf("ResolveRealPath(missing, true) = %q, want %q", got, want)
	}

	if got := ResolveRealPath("", true); got != "" {
		t.Errorf("ResolveRealPath(\"\") = %q, want empty", got)
	}
}
