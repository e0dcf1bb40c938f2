// Package config loads the updater configuration from command line
// flags, COREUPDATER_* environment variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/ralt/coreupdater/internal/coreinfo"
	"github.com/ralt/coreupdater/internal/export"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/updater"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "COREUPDATER"

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"cores-dir":       "cores_dir",
	"info-dir":        "info_dir",
	"buildbot-url":    "buildbot_url",
	"listing":         "listing",
	"signature":       "signature",
	"keyring":         "keyring",
	"pfd-dir":         "pfd_dir",
	"pfd-core":        "pfd_cores",
	"sort":            "sort",
	"max-entries":     "max_entries",
	"info-cache-size": "info_cache_size",
	"format":          "format",
	"output":          "output",
	"check-status":    "check_status",
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() models.UpdaterConfig {
	return models.UpdaterConfig{
		SortMode:      updater.SortGrouped.String(),
		InfoCacheSize: coreinfo.DefaultCacheSize,
		Format:        string(export.FormatText),
	}
}

// AddFlags registers the configuration flags on flags
func AddFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()

	// Directories
	flags.String("cores-dir", defaults.CoresDir, "Directory holding installed cores")
	flags.String("info-dir", defaults.InfoDir, "Directory holding core info files")

	// Buildbot source
	flags.String("buildbot-url", defaults.BuildbotURL, "Base URL of the buildbot core directory")
	flags.StringP("listing", "l", defaults.ListingPath, "Buildbot listing file (- for stdin)")
	flags.String("signature", defaults.SignaturePath, "Detached OpenPGP signature of the listing")
	flags.String("keyring", defaults.KeyringPath, "OpenPGP public keyring used to verify the listing")

	// Play feature delivery source
	flags.String("pfd-dir", defaults.PFDDir, "Directory scanned for play feature delivery cores")
	flags.StringSlice("pfd-core", defaults.PFDCores, "Play feature delivery core filename (repeatable)")

	// List behaviour
	flags.String("sort", defaults.SortMode, "Sort mode (grouped, alphabetical)")
	flags.Int("max-entries", defaults.MaxEntries, "Maximum number of list entries, 0 for no limit")
	flags.Int("info-cache-size", defaults.InfoCacheSize, "Number of core info files kept in memory")

	// Output
	flags.StringP("format", "f", defaults.Format, "Output format (text, json, yaml)")
	flags.StringP("output", "o", defaults.OutputPath, "Output file, stdout when empty")
	flags.Bool("check-status", defaults.CheckStatus, "Report installed and up to date state of each core")
}

// Load builds the configuration. Flags explicitly set on the command line
// win over the environment, which wins over configFile, which wins over
// defaults. configFile may be empty.
func Load(flags *pflag.FlagSet, configFile string) (*models.UpdaterConfig, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("cores_dir", defaults.CoresDir)
	v.SetDefault("info_dir", defaults.InfoDir)
	v.SetDefault("buildbot_url", defaults.BuildbotURL)
	v.SetDefault("listing", defaults.ListingPath)
	v.SetDefault("signature", defaults.SignaturePath)
	v.SetDefault("keyring", defaults.KeyringPath)
	v.SetDefault("pfd_dir", defaults.PFDDir)
	v.SetDefault("pfd_cores", defaults.PFDCores)
	v.SetDefault("sort", defaults.SortMode)
	v.SetDefault("max_entries", defaults.MaxEntries)
	v.SetDefault("info_cache_size", defaults.InfoCacheSize)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("output", defaults.OutputPath)
	v.SetDefault("check_status", defaults.CheckStatus)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &models.CoreUpdaterError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("failed to read config file %s: %w", configFile, err),
			}
		}
		logrus.Debugf("Loaded config file: %s", v.ConfigFileUsed())
	}

	var cfg models.UpdaterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &models.CoreUpdaterError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to parse config: %w", err),
		}
	}

	return &cfg, nil
}

// Validate checks that cfg describes a buildable list
func Validate(cfg *models.UpdaterConfig) error {
	if cfg.CoresDir == "" {
		return invalid("cores-dir is required")
	}

	if cfg.InfoDir == "" {
		return invalid("info-dir is required")
	}

	if cfg.IsPFD() {
		if cfg.ListingPath != "" {
			return invalid("listing cannot be combined with play feature delivery cores")
		}
	} else {
		if cfg.ListingPath == "" {
			return invalid("listing is required unless pfd-dir or pfd-core is set")
		}
		if cfg.BuildbotURL == "" {
			return invalid("buildbot-url is required for buildbot listings")
		}
	}

	if (cfg.SignaturePath == "") != (cfg.KeyringPath == "") {
		return invalid("signature and keyring must be given together")
	}

	if _, err := updater.ParseSortMode(cfg.SortMode); err != nil {
		return invalid(err.Error())
	}

	if _, err := export.NewExporter(cfg.Format); err != nil {
		return invalid(err.Error())
	}

	if cfg.MaxEntries < 0 {
		return invalid("max-entries cannot be negative")
	}

	// Fall back to the default cache size
	if cfg.InfoCacheSize <= 0 {
		cfg.InfoCacheSize = coreinfo.DefaultCacheSize
	}

	return nil
}

func invalid(msg string) error {
	return &models.CoreUpdaterError{
		Type: models.ErrInvalidConfig,
		Err:  fmt.Errorf("%s", msg),
	}
}
