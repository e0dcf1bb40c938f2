// Package coreinfo reads the core info files that describe each core:
// display name, description, licenses and stability.
package coreinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when no usable core info exists for a path
var ErrNotFound = errors.New("core info not found")

// Info is the subset of a core info file the updater consumes
type Info struct {
	DisplayName    string
	Description    string
	Licenses       string // Pipe delimited, e.g. "GPLv2|MAME"
	IsExperimental bool
}

// Reader looks up core info by info file path
type Reader interface {
	// Read returns the info stored at path, or ErrNotFound
	Read(path string) (*Info, error)
}

// FileReader reads core info files from a filesystem
type FileReader struct {
	fs afero.Fs
}

// NewFileReader creates a reader on the host filesystem
func NewFileReader() *FileReader {
	return NewFileReaderWithFS(afero.NewOsFs())
}

// NewFileReaderWithFS creates a reader on the given filesystem
func NewFileReaderWithFS(fs afero.Fs) *FileReader {
	return &FileReader{fs: fs}
}

// Read parses the core info file at path
func (r *FileReader) Read(path string) (*Info, error) {
	if path == "" {
		return nil, ErrNotFound
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses the key = "value" core info format
func Parse(data []byte) (*Info, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
		AllowBooleanKeys:        true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse core info: %w", err)
	}

	sec := cfg.Section(ini.DefaultSection)

	info := &Info{
		DisplayName:    strings.TrimSpace(sec.Key("display_name").String()),
		Description:    strings.TrimSpace(sec.Key("description").String()),
		Licenses:       strings.TrimSpace(sec.Key("license").String()),
		IsExperimental: sec.Key("is_experimental").MustBool(false),
	}

	return info, nil
}
