package utils

import (
	"path/filepath"
	"strings"
)

// CoreInfoExtension is appended to every core info path
const CoreInfoExtension = ".info"

// CoreNameSuffix is the standard core basename ending, kept when
// normalising platform specific core filenames
const CoreNameSuffix = "_libretro"

// Archive extensions a core may be distributed in
var archiveExtensions = []string{".zip", ".7z", ".apk"}

// JoinPath joins a directory and a filename
func JoinPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// JoinURL joins a base URL and a filename with exactly one slash
func JoinURL(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(name, "/")
}

// IsCompressedFile reports whether path names an archive
func IsCompressedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, archiveExt := range archiveExtensions {
		if ext == archiveExt {
			return true
		}
	}
	return false
}

// RemoveExtension strips the last extension of the final path element
func RemoveExtension(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// StripPlatformSuffix truncates the basename of path at its last
// underscore, unless that underscore starts CoreNameSuffix.
// e.g. "mgba_libretro_android" becomes "mgba_libretro"
func StripPlatformSuffix(path string) string {
	dir, base := filepath.Split(path)
	idx := strings.LastIndex(base, "_")
	if idx < 0 || base[idx:] == CoreNameSuffix {
		return path
	}
	return dir + base[:idx]
}

// ResolveRealPath returns the absolute, cleaned form of path. Symlinks are
// only followed when resolveSymlinks is set; if they cannot be followed
// (missing file, loop) the literal absolute path is returned.
func ResolveRealPath(path string, resolveSymlinks bool) string {
	if path == "" {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if !resolveSymlinks {
		return abs
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}
