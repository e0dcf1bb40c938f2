package models

import "slices"

// ListType identifies where the entries of a core updater list came from.
// It decides the path resolution rules for every entry of the list.
type ListType int

const (
	ListTypeUnknown ListType = iota
	ListTypeBuildbot
	ListTypePFD
)

// String returns the string representation of ListType
func (t ListType) String() string {
	switch t {
	case ListTypeBuildbot:
		return "buildbot"
	case ListTypePFD:
		return "pfd"
	default:
		return "unknown"
	}
}

// ReleaseDate is the build date advertised by the buildbot listing
type ReleaseDate struct {
	Year  uint `json:"year" yaml:"year"`
	Month uint `json:"month" yaml:"month"`
	Day   uint `json:"day" yaml:"day"`
}

// IsZero reports whether no date was set
func (d ReleaseDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Entry is one row of a core updater list: either an installable core
// or a synthetic manufacturer/console header.
type Entry struct {
	// Source information
	RemoteFilename string `json:"remote_filename,omitempty" yaml:"remote_filename,omitempty"`
	RemoteCorePath string `json:"remote_core_path,omitempty" yaml:"remote_core_path,omitempty"`

	// Local paths
	LocalCorePath string `json:"local_core_path,omitempty" yaml:"local_core_path,omitempty"`
	LocalInfoPath string `json:"local_info_path,omitempty" yaml:"local_info_path,omitempty"`

	// Core info metadata
	DisplayName    string   `json:"display_name" yaml:"display_name"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Licenses       []string `json:"licenses,omitempty" yaml:"licenses,omitempty"`
	IsExperimental bool     `json:"is_experimental,omitempty" yaml:"is_experimental,omitempty"`

	// Buildbot only, zero otherwise
	CRC  uint32      `json:"crc,omitempty" yaml:"crc,omitempty"`
	Date ReleaseDate `json:"date" yaml:"date"`

	IsManufacturerHeader bool `json:"is_manufacturer_header,omitempty" yaml:"is_manufacturer_header,omitempty"`
	IsConsoleHeader      bool `json:"is_console_header,omitempty" yaml:"is_console_header,omitempty"`
}

// IsHeader reports whether the entry is a synthetic header row
func (e Entry) IsHeader() bool {
	return e.IsManufacturerHeader || e.IsConsoleHeader
}

// Clone returns a copy that shares no mutable state with e
func (e Entry) Clone() Entry {
	e.Licenses = slices.Clone(e.Licenses)
	return e
}
