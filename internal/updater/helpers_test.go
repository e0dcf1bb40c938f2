package updater

import (
	"path/filepath"
	"testing"

	"github.com/ralt/coreupdater/internal/coreinfo"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testBuildbotURL = "http://buildbot.example.com/nightly/linux/x86_64/latest"

// newTestResolver returns a resolver for /cores and /info whose info
// files live in memory. infos maps info file basenames to contents.
func newTestResolver(t *testing.T, infos map[string]string) *Resolver {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range infos {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/info", name), []byte(content), 0644))
	}

	return NewResolver("/cores", "/info", testBuildbotURL, coreinfo.NewFileReaderWithFS(fs))
}

// core returns a package entry with the given filename and display name
func core(filename, displayName string) models.Entry {
	return models.Entry{
		RemoteFilename: filename,
		LocalCorePath:  filepath.Join("/cores", filename),
		DisplayName:    displayName,
	}
}

// labels returns the display names of entries in order
func labels(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.DisplayName
	}
	return out
}
