package scanner

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string][]byte{
		"/pfd/lib/arm64/libmgba_libretro_android.so":   {0x7F, 'E', 'L', 'F', 2, 1, 1},
		"/pfd/lib/arm64/libsnes9x_libretro_android.so": {0x7F, 'E', 'L', 'F', 2, 1, 1},
		"/pfd/cores/mgba_libretro.dll":                 {'M', 'Z', 0x90, 0x00},
		"/pfd/cores/mgba_libretro.dylib":               {0xCF, 0xFA, 0xED, 0xFE},
		"/pfd/cores/stub_libretro.so":                  {},
		"/pfd/downloads/nestopia_libretro.so.zip":      {'P', 'K', 0x03, 0x04},
		"/pfd/README.txt":                              []byte("not a core"),
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, content, 0644))
	}
	return fs
}

func TestDetectCoreType(t *testing.T) {
	fs := newTestFS(t)

	tests := map[string]CoreType{
		"/pfd/lib/arm64/libmgba_libretro_android.so": TypeELF,
		"/pfd/cores/mgba_libretro.dll":               TypePE,
		"/pfd/cores/mgba_libretro.dylib":             TypeMachO,
		"/pfd/cores/stub_libretro.so":                TypeELF,
		"/pfd/downloads/nestopia_libretro.so.zip":    TypeArchive,
		"/pfd/README.txt":                            TypeUnknown,
	}

	for path, want := range tests {
		got, err := DetectCoreType(fs, path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := DetectCoreType(fs, "/pfd/missing.so")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	sc := NewFileSystemScannerWithFS(newTestFS(t))

	cores, err := sc.Scan(context.Background(), "/pfd")
	require.NoError(t, err)

	// Sorted by path, README skipped
	assert.Equal(t, []string{
		"mgba_libretro.dll",
		"mgba_libretro.dylib",
		"stub_libretro.so",
		"nestopia_libretro.so.zip",
		"libmgba_libretro_android.so",
		"libsnes9x_libretro_android.so",
	}, Names(cores))

	assert.Equal(t, TypeELF, cores[4].Type)
	assert.Equal(t, int64(7), cores[4].Size)
}

func TestScanCancelled(t *testing.T) {
	sc := NewFileSystemScannerWithFS(newTestFS(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sc.Scan(ctx, "/pfd")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanMissingDir(t *testing.T) {
	sc := NewFileSystemScannerWithFS(afero.NewMemMapFs())

	_, err := sc.Scan(context.Background(), "/nowhere")
	assert.Error(t, err)
}

func TestCoreTypeString(t *testing.T) {
	assert.Equal(t, "elf", TypeELF.String())
	assert.Equal(t, "pe", TypePE.String())
	assert.Equal(t, "macho", TypeMachO.String())
	assert.Equal(t, "archive", TypeArchive.String())
	assert.Equal(t, "unknown", TypeUnknown.String())
}
