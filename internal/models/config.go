package models

// UpdaterConfig contains configuration for building a core updater list
type UpdaterConfig struct {
	// Directories
	CoresDir string `mapstructure:"cores_dir"` // Installed cores
	InfoDir  string `mapstructure:"info_dir"`  // Core info (.info) files

	// Buildbot source
	BuildbotURL   string `mapstructure:"buildbot_url"` // Base URL the listing entries are relative to
	ListingPath   string `mapstructure:"listing"`      // Local copy of the buildbot listing, "-" for stdin
	SignaturePath string `mapstructure:"signature"`    // Detached signature of the listing
	KeyringPath   string `mapstructure:"keyring"`      // OpenPGP keyring used to verify SignaturePath

	// Play feature delivery source
	PFDDir   string   `mapstructure:"pfd_dir"`   // Directory scanned for installed PFD cores
	PFDCores []string `mapstructure:"pfd_cores"` // Explicit PFD core filenames

	// List behaviour
	SortMode      string `mapstructure:"sort"`            // grouped or alphabetical
	MaxEntries    int    `mapstructure:"max_entries"`     // Upper bound on list size, 0 for none
	InfoCacheSize int    `mapstructure:"info_cache_size"` // Number of core info lookups kept in memory

	// Output
	Format      string `mapstructure:"format"`       // text, json or yaml
	OutputPath  string `mapstructure:"output"`       // Empty for stdout
	CheckStatus bool   `mapstructure:"check_status"` // Report installed/up to date state
}

// IsPFD reports whether the configuration selects the play feature
// delivery source rather than a buildbot listing
func (c *UpdaterConfig) IsPFD() bool {
	return c.PFDDir != "" || len(c.PFDCores) > 0
}
