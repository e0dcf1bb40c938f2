package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ralt/coreupdater/internal/config"
	"github.com/ralt/coreupdater/internal/export"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/updater"
	"github.com/ralt/coreupdater/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build and print the core updater list",
		Long: `Builds the core updater list from a buildbot listing or from play
feature delivery cores and writes it as text, JSON or YAML. Output files
ending in .gz, .zst or .xz are compressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logrus.Debug("Starting core list generation...")
			return runList(cmd, cfg)
		},
	}

	config.AddFlags(cmd.Flags())

	return cmd
}

func runList(cmd *cobra.Command, cfg *models.UpdaterConfig) error {
	list, err := buildList(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer updater.FreeCached()

	exporter, err := export.NewExporter(cfg.Format)
	if err != nil {
		return &models.CoreUpdaterError{Type: models.ErrInvalidConfig, Err: err}
	}

	rows := export.Rows(list.Entries())
	if cfg.CheckStatus {
		addStatus(rows)
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, rows); err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to export %s list: %w", exporter.Format(), err),
		}
	}

	if cfg.OutputPath == "" {
		return writeOut(cmd.OutOrStdout(), buf.Bytes())
	}

	data, err := utils.CompressFor(cfg.OutputPath, buf.Bytes())
	if err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to compress %s: %w", cfg.OutputPath, err),
		}
	}

	if err := utils.WriteFile(cfg.OutputPath, data, 0644); err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err),
		}
	}

	logrus.Infof("Wrote %d entries to %s", len(rows), cfg.OutputPath)
	return nil
}

// addStatus fills the install state of every core row
func addStatus(rows []export.Row) {
	for i := range rows {
		if rows[i].IsHeader() {
			continue
		}

		status, err := updater.CoreStatus(rows[i].Entry)
		if err != nil {
			logrus.Warnf("Failed to check %s: %v", rows[i].RemoteFilename, err)
		}

		installed, upToDate := status.Installed, status.UpToDate
		rows[i].Installed = &installed
		rows[i].UpToDate = &upToDate
	}
}

func writeOut(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return &models.CoreUpdaterError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write output: %w", err),
		}
	}
	return nil
}
