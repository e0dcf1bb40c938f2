package scanner

import "context"

// CoreType represents the binary format of a core file
type CoreType int

const (
	TypeUnknown CoreType = iota
	TypeELF
	TypePE
	TypeMachO
	TypeArchive
)

// String returns the string representation of CoreType
func (ct CoreType) String() string {
	switch ct {
	case TypeELF:
		return "elf"
	case TypePE:
		return "pe"
	case TypeMachO:
		return "macho"
	case TypeArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// ScannedCore represents a core file found during scanning
type ScannedCore struct {
	Path string
	Name string // Base filename, as a PFD listing names it
	Type CoreType
	Size int64
}

// Scanner interface for detecting and scanning installed cores
type Scanner interface {
	// Scan recursively scans a directory for cores
	Scan(ctx context.Context, dir string) ([]ScannedCore, error)

	// DetectType determines the core type of a file
	DetectType(path string) (CoreType, error)
}
