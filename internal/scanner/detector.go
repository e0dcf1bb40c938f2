package scanner

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Magic bytes for core detection
var (
	// ELF shared objects (Linux, Android)
	elfMagic = []byte{0x7F, 'E', 'L', 'F'}

	// PE DLLs start with the DOS "MZ" stub
	peMagic = []byte{'M', 'Z'}

	// Mach-O, 32/64 bit in both byte orders, plus fat binaries
	machoMagics = [][]byte{
		{0xFE, 0xED, 0xFA, 0xCE},
		{0xFE, 0xED, 0xFA, 0xCF},
		{0xCE, 0xFA, 0xED, 0xFE},
		{0xCF, 0xFA, 0xED, 0xFE},
		{0xCA, 0xFE, 0xBA, 0xBE},
	}

	// Zip archives (buildbot .zip downloads)
	zipMagic = []byte{'P', 'K', 0x03, 0x04}

	// 7z archives
	sevenZipMagic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}
)

// DetectCoreType determines the core type based on magic bytes and file extension
func DetectCoreType(fs afero.Fs, path string) (CoreType, error) {
	f, err := fs.Open(path)
	if err != nil {
		return TypeUnknown, err
	}
	defer f.Close()

	// Read first 16 bytes for magic byte detection
	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && n == 0 && err != io.EOF {
		return TypeUnknown, err
	}
	header = header[:n]

	ext := strings.ToLower(filepath.Ext(path))

	if bytes.HasPrefix(header, elfMagic) || ext == ".so" {
		return TypeELF, nil
	}

	if bytes.HasPrefix(header, peMagic) || ext == ".dll" {
		return TypePE, nil
	}

	for _, magic := range machoMagics {
		if bytes.HasPrefix(header, magic) {
			return TypeMachO, nil
		}
	}
	if ext == ".dylib" {
		return TypeMachO, nil
	}

	if bytes.HasPrefix(header, zipMagic) || bytes.HasPrefix(header, sevenZipMagic) ||
		ext == ".zip" || ext == ".7z" {
		return TypeArchive, nil
	}

	return TypeUnknown, nil
}
