package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/crc32"
)

// CalculateCRC32 calculates the IEEE CRC32 of a file, the checksum the
// buildbot publishes for each core
func CalculateCRC32(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}

// FormatCRC32 renders a checksum the way the buildbot listing does
func FormatCRC32(crc uint32) string {
	return fmt.Sprintf("%08x", crc)
}
