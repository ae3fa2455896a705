package portraitcmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spelprogrammen/portraits/internal/audit"
	"github.com/spelprogrammen/portraits/internal/classify"
	"github.com/spelprogrammen/portraits/internal/discover"
)

// NewProcessCmd creates the process command
func NewProcessCmd() *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process [year]",
		Short: "Classify a cohort's portraits and render its collages",
		Long: `Classify every portrait in a year folder (SP23, SP24, ...) by shirt
color, write portrait_groups.json and portrait_audit.parquet into the
folder and lay each shirt group out as a one page A4 collage PDF.

The year may be given as 23 or SP23. With --all, every SPnn folder
under the root is processed.`,
		Example: `  # Classify the SP23 cohort and render its collages
  portraits process 23

  # Process every year folder, portrait and landscape pages
  portraits process --all --orientation both

  # Groupings only, no PDFs
  portraits process 23 --skip-pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.year = args[0]
			}
			if opts.year == "" && !opts.all {
				return fmt.Errorf("specify a year (e.g. 23) or --all")
			}

			return executeProcess(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Folder holding the SPnn year folders (default $PORTRAITS_ROOT or .)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Process every year folder under the root")
	cmd.Flags().Float64Var(&opts.minDiff, "min-diff", classify.DefaultMinDiff, "Green-red difference needed for a direct assignment")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", classify.DefaultCorrectionThreshold, "Green-red difference at or above which borderline portraits move to green")
	cmd.Flags().BoolVar(&opts.noAutoCorrect, "no-auto-correct", false, "Skip the correction pass")
	cmd.Flags().StringVar(&opts.output, "output", "", "Folder the collage PDFs are written to (default $PORTRAITS_OUTPUT or Collages)")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "portrait", "Collage page orientation (portrait, landscape, or both)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 1, "Portraits classified in parallel")
	cmd.Flags().BoolVar(&opts.skipPDF, "skip-pdf", false, "Classify and save groupings without rendering collages")

	return cmd
}

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	var root string
	var all bool
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "report [year]",
		Short: "Summarize saved groupings across year folders",
		Long: `Summarize the groupings and audit trails saved by process.

Without a year, every processed SPnn folder under the root is
included.`,
		Example: `  # Text summary of every processed year
  portraits report

  # One year as a standalone chart page
  portraits report 23 --format html -o cohorts.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := ""
			if len(args) > 0 {
				year = args[0]
			}
			return executeReport(root, year, all, format, output)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Folder holding the SPnn year folders (default $PORTRAITS_ROOT or .)")
	cmd.Flags().BoolVar(&all, "all", false, "Report on every year folder under the root")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json, or html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var root string
	var auditPath string
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect [year]",
		Short: "Show the audit trail behind a year's grouping",
		Long: `Print the per-portrait audit trail saved by process: the sampled
color averages, the green-red difference each decision keyed on and
whether the correction pass moved the portrait.`,
		Example: `  # Every record for SP23
  portraits inspect 23

  # Only the portraits that stayed unknown
  portraits inspect 23 --category unknown

  # A specific audit file
  portraits inspect --audit SP23/portrait_audit.parquet --limit 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if auditPath == "" {
				if len(args) == 0 {
					return fmt.Errorf("specify a year (e.g. 23) or --audit")
				}
				auditPath = filepath.Join(resolveRoot(root), discover.Normalize(args[0]), audit.Filename)
			}
			return executeInspect(auditPath, category, limit)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Folder holding the SPnn year folders (default $PORTRAITS_ROOT or .)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "Path to a portrait_audit.parquet file")
	cmd.Flags().StringVar(&category, "category", "", "Only show one group (green, orange, or unknown)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of records to show (0 for all)")

	return cmd
}
