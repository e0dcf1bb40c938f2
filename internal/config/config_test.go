package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ralt/coreupdater/internal/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Empty(t, cfg.CoresDir)
	assert.Empty(t, cfg.PFDCores)
	assert.False(t, cfg.IsPFD())
	assert.Equal(t, "grouped", cfg.SortMode)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 256, cfg.InfoCacheSize)
}

func TestLoadFlags(t *testing.T) {
	flags := newFlags(t,
		"--cores-dir", "/cores",
		"--info-dir", "/info",
		"--pfd-core", "a_libretro_android.so",
		"--pfd-core", "b_libretro_android.so",
		"--sort", "alphabetical",
		"--max-entries", "50",
		"-f", "json",
		"--check-status",
	)

	cfg, err := Load(flags, "")
	require.NoError(t, err)

	assert.Equal(t, "/cores", cfg.CoresDir)
	assert.Equal(t, "/info", cfg.InfoDir)
	assert.Equal(t, []string{"a_libretro_android.so", "b_libretro_android.so"}, cfg.PFDCores)
	assert.Equal(t, "alphabetical", cfg.SortMode)
	assert.Equal(t, 50, cfg.MaxEntries)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.CheckStatus)
	assert.True(t, cfg.IsPFD())

	// Untouched flags keep their defaults
	assert.Equal(t, 256, cfg.InfoCacheSize)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coreupdater.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`cores_dir: /file/cores
info_dir: /file/info
buildbot_url: http://buildbot.example.com/latest
listing: /file/.index-extended
max_entries: 10
`), 0644))

	t.Setenv("COREUPDATER_INFO_DIR", "/env/info")
	t.Setenv("COREUPDATER_MAX_ENTRIES", "20")

	flags := newFlags(t, "--max-entries", "30")

	cfg, err := Load(flags, path)
	require.NoError(t, err)

	assert.Equal(t, "/file/cores", cfg.CoresDir)
	assert.Equal(t, "/env/info", cfg.InfoDir)
	assert.Equal(t, 30, cfg.MaxEntries)
	assert.Equal(t, "http://buildbot.example.com/latest", cfg.BuildbotURL)
	assert.Equal(t, "/file/.index-extended", cfg.ListingPath)
	assert.False(t, cfg.IsPFD())
}

func TestLoadEnvList(t *testing.T) {
	t.Setenv("COREUPDATER_PFD_CORES", "a_libretro.so,b_libretro.so")

	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a_libretro.so", "b_libretro.so"}, cfg.PFDCores)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var cuErr *models.CoreUpdaterError
	require.True(t, errors.As(err, &cuErr))
	assert.Equal(t, models.ErrInvalidConfig, cuErr.Type)
}

func TestValidate(t *testing.T) {
	buildbot := func() *models.UpdaterConfig {
		cfg := DefaultConfig()
		cfg.CoresDir = "/cores"
		cfg.InfoDir = "/info"
		cfg.BuildbotURL = "http://buildbot.example.com/latest"
		cfg.ListingPath = "-"
		return &cfg
	}

	tests := []struct {
		name    string
		mutate  func(*models.UpdaterConfig)
		wantErr bool
	}{
		{name: "buildbot", mutate: func(*models.UpdaterConfig) {}},
		{name: "pfd", mutate: func(c *models.UpdaterConfig) {
			c.ListingPath = ""
			c.BuildbotURL = ""
			c.PFDDir = "/pfd"
		}},
		{name: "signed", mutate: func(c *models.UpdaterConfig) {
			c.SignaturePath = "/listing.sig"
			c.KeyringPath = "/keyring.gpg"
		}},
		{name: "no cores dir", mutate: func(c *models.UpdaterConfig) { c.CoresDir = "" }, wantErr: true},
		{name: "no info dir", mutate: func(c *models.UpdaterConfig) { c.InfoDir = "" }, wantErr: true},
		{name: "no listing", mutate: func(c *models.UpdaterConfig) { c.ListingPath = "" }, wantErr: true},
		{name: "no buildbot url", mutate: func(c *models.UpdaterConfig) { c.BuildbotURL = "" }, wantErr: true},
		{name: "listing and pfd", mutate: func(c *models.UpdaterConfig) { c.PFDCores = []string{"a.so"} }, wantErr: true},
		{name: "signature without keyring", mutate: func(c *models.UpdaterConfig) { c.SignaturePath = "/listing.sig" }, wantErr: true},
		{name: "bad sort", mutate: func(c *models.UpdaterConfig) { c.SortMode = "random" }, wantErr: true},
		{name: "bad format", mutate: func(c *models.UpdaterConfig) { c.Format = "xml" }, wantErr: true},
		{name: "negative max entries", mutate: func(c *models.UpdaterConfig) { c.MaxEntries = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := buildbot()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var cuErr *models.CoreUpdaterError
			require.True(t, errors.As(err, &cuErr))
			assert.Equal(t, models.ErrInvalidConfig, cuErr.Type)
		})
	}
}

func TestValidateDefaultsCacheSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CoresDir = "/cores"
	cfg.InfoDir = "/info"
	cfg.PFDCores = []string{"a_libretro.so"}
	cfg.InfoCacheSize = 0

	require.NoError(t, Validate(&cfg))
	assert.Equal(t, 256, cfg.InfoCacheSize)
}
