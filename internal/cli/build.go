package cli

import (
	"context"
	"fmt"

	"github.com/ralt/coreupdater/internal/config"
	"github.com/ralt/coreupdater/internal/coreinfo"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/scanner"
	"github.com/ralt/coreupdater/internal/signer"
	"github.com/ralt/coreupdater/internal/updater"
	"github.com/ralt/coreupdater/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadConfig reads and validates the configuration of cmd
func loadConfig(cmd *cobra.Command) (*models.UpdaterConfig, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logrus.Debugf("Configuration: %+v", *cfg)
	return cfg, nil
}

// buildList ingests the configured source into the process wide cached
// list and returns it
func buildList(ctx context.Context, cfg *models.UpdaterConfig) (*updater.List, error) {
	mode, err := updater.ParseSortMode(cfg.SortMode)
	if err != nil {
		return nil, &models.CoreUpdaterError{Type: models.ErrInvalidConfig, Err: err}
	}

	// Step 1: Core info lookups
	info, err := coreinfo.NewCachedReader(coreinfo.NewFileReader(), cfg.InfoCacheSize)
	if err != nil {
		return nil, &models.CoreUpdaterError{
			Type: models.ErrCoreInfo,
			Err:  fmt.Errorf("failed to initialize core info cache: %w", err),
		}
	}
	resolver := updater.NewResolver(cfg.CoresDir, cfg.InfoDir, cfg.BuildbotURL, info)

	list := updater.InitCached(
		updater.WithSortMode(mode),
		updater.WithMaxEntries(cfg.MaxEntries),
	)

	// Step 2: Ingest the source
	if cfg.IsPFD() {
		cores, err := pfdCores(ctx, cfg)
		if err != nil {
			return nil, err
		}

		logrus.Infof("Building core list from %d play feature delivery cores", len(cores))
		if err := list.ParsePFDData(resolver, cores); err != nil {
			return nil, err
		}
	} else {
		data, err := readListing(cfg)
		if err != nil {
			return nil, err
		}

		logrus.Infof("Building core list from buildbot listing %s", cfg.ListingPath)
		if err := list.ParseNetworkData(resolver, data); err != nil {
			return nil, err
		}
	}

	logrus.Infof("Core list has %d entries (%d core info files read)", list.Size(), info.Len())
	return list, nil
}

// readListing loads, verifies and decompresses the buildbot listing
func readListing(cfg *models.UpdaterConfig) ([]byte, error) {
	data, err := utils.ReadInput(cfg.ListingPath)
	if err != nil {
		return nil, &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read listing: %w", err),
		}
	}

	if cfg.SignaturePath != "" {
		if err := verifyListing(cfg, data); err != nil {
			return nil, err
		}
	}

	data, err = utils.Decompress(data)
	if err != nil {
		return nil, &models.CoreUpdaterError{
			Type: models.ErrListingParse,
			Err:  fmt.Errorf("failed to decompress listing: %w", err),
		}
	}

	return data, nil
}

func verifyListing(cfg *models.UpdaterConfig, data []byte) error {
	verifier, err := signer.NewGPGVerifier(cfg.KeyringPath)
	if err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrSignature,
			Err:  fmt.Errorf("failed to initialize GPG verifier: %w", err),
		}
	}

	signature, err := utils.ReadInput(cfg.SignaturePath)
	if err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read signature: %w", err),
		}
	}

	signedBy, err := verifier.VerifyDetached(data, signature)
	if err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrSignature,
			Err:  fmt.Errorf("listing signature check failed: %w", err),
		}
	}

	logrus.Infof("Listing signed by %s", signedBy)
	return nil
}

// pfdCores returns the explicit core names followed by the cores found
// in the PFD directory
func pfdCores(ctx context.Context, cfg *models.UpdaterConfig) ([]string, error) {
	cores := append([]string(nil), cfg.PFDCores...)

	if cfg.PFDDir != "" {
		logrus.Infof("Scanning directory: %s", cfg.PFDDir)
		sc := scanner.NewFileSystemScanner()
		scanned, err := sc.Scan(ctx, cfg.PFDDir)
		if err != nil {
			return nil, &models.CoreUpdaterError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to scan directory: %w", err),
			}
		}
		cores = append(cores, scanner.Names(scanned)...)
	}

	return cores, nil
}
