package updater

import (
	"fmt"

	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/utils"
)

// Status describes the local state of a listed core
type Status struct {
	Installed bool
	UpToDate  bool
	LocalCRC  uint32
}

// CoreStatus checks whether the core of entry is installed and, for
// buildbot entries, whether the installed file matches the listed CRC.
// Entries without a CRC count as up to date once installed.
func CoreStatus(entry models.Entry) (Status, error) {
	if entry.IsHeader() || entry.LocalCorePath == "" {
		return Status{}, nil
	}

	if !utils.FileExists(entry.LocalCorePath) {
		return Status{}, nil
	}

	status := Status{Installed: true, UpToDate: true}
	if entry.CRC == 0 {
		return status, nil
	}

	crc, err := utils.CalculateCRC32(entry.LocalCorePath)
	if err != nil {
		return Status{Installed: true}, fmt.Errorf("failed to checksum %s: %w", entry.LocalCorePath, err)
	}

	status.LocalCRC = crc
	status.UpToDate = crc == entry.CRC
	return status, nil
}
