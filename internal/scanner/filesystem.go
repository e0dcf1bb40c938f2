package scanner

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileSystemScanner implements Scanner interface for filesystem scanning
type FileSystemScanner struct {
	fs afero.Fs
}

var _ Scanner = (*FileSystemScanner)(nil)

// NewFileSystemScanner creates a new scanner on the host filesystem
func NewFileSystemScanner() *FileSystemScanner {
	return NewFileSystemScannerWithFS(afero.NewOsFs())
}

// NewFileSystemScannerWithFS creates a new scanner on the given filesystem
func NewFileSystemScannerWithFS(fs afero.Fs) *FileSystemScanner {
	return &FileSystemScanner{fs: fs}
}

// Scan recursively scans a directory for cores
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedCore, error) {
	var cores []ScannedCore

	err := afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		coreType, err := s.DetectType(path)
		if err != nil {
			logrus.Warnf("Failed to detect type for %s: %v", path, err)
			return nil
		}

		// Skip unknown types
		if coreType == TypeUnknown {
			return nil
		}

		logrus.Debugf("Found %s core: %s", coreType, path)

		cores = append(cores, ScannedCore{
			Path: path,
			Name: info.Name(),
			Type: coreType,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	sort.Slice(cores, func(i, j int) bool {
		return cores[i].Path < cores[j].Path
	})

	logrus.Infof("Found %d cores in %s", len(cores), dir)
	return cores, nil
}

// DetectType determines the core type of a file
func (s *FileSystemScanner) DetectType(path string) (CoreType, error) {
	return DetectCoreType(s.fs, path)
}

// Names returns the base filenames of the scanned cores
func Names(cores []ScannedCore) []string {
	names := make([]string, 0, len(cores))
	for _, core := range cores {
		names = append(names, core.Name)
	}
	return names
}
