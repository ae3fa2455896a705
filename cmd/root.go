package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/spelprogrammen/portraits/internal/portraitcmd"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "portraits",
		Short: "Sort student portraits by shirt color and build collage PDFs",
		Long: `Portraits sorts cohort photos into green and orange shirt groups by
sampling the bottom edge of each image.

Groupings are saved next to the photos along with a parquet audit trail,
and each group is laid out as a one page A4 collage PDF.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(portraitcmd.NewProcessCmd())
	cmd.AddCommand(portraitcmd.NewReportCmd())
	cmd.AddCommand(portraitcmd.NewInspectCmd())

	return cmd
}
