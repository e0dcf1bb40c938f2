package cli

import (
	"fmt"

	"github.com/ralt/coreupdater/internal/config"
	"github.com/ralt/coreupdater/internal/export"
	"github.com/ralt/coreupdater/internal/models"
	"github.com/ralt/coreupdater/internal/updater"
	"github.com/spf13/cobra"
)

// NewLookupCmd creates the lookup command
func NewLookupCmd() *cobra.Command {
	var (
		filename string
		corePath string
		index    int
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find one core in the core updater list",
		Long: `Builds the core updater list and prints the entry matching a remote
filename, an installed core path or a list index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := 0
			for _, given := range []bool{filename != "", corePath != "", index >= 0} {
				if given {
					set++
				}
			}
			if set != 1 {
				return &models.CoreUpdaterError{
					Type: models.ErrInvalidConfig,
					Err:  fmt.Errorf("exactly one of --filename, --core-path or --index is required"),
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			list, err := buildList(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer updater.FreeCached()

			var (
				entry models.Entry
				found bool
				what  string
			)
			switch {
			case filename != "":
				entry, found = list.FindByFilename(filename)
				what = filename
			case corePath != "":
				entry, found = list.FindByCorePath(corePath)
				what = corePath
			default:
				entry, found = list.Entry(index)
				what = fmt.Sprintf("index %d", index)
			}

			if !found {
				return &models.CoreUpdaterError{
					Type: models.ErrListingParse,
					Core: what,
					Err:  fmt.Errorf("core not found"),
				}
			}

			exporter, err := export.NewExporter(cfg.Format)
			if err != nil {
				return err
			}
			return exporter.Export(cmd.OutOrStdout(), export.Rows([]models.Entry{entry}))
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "Remote core filename to look up")
	cmd.Flags().StringVar(&corePath, "core-path", "", "Installed core path to look up")
	cmd.Flags().IntVar(&index, "index", -1, "List index to look up")
	config.AddFlags(cmd.Flags())

	return cmd
}
