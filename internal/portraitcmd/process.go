package portraitcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spelprogrammen/portraits/internal/audit"
	"github.com/spelprogrammen/portraits/internal/classify"
	"github.com/spelprogrammen/portraits/internal/discover"
	"github.com/spelprogrammen/portraits/internal/groups"
	"github.com/spelprogrammen/portraits/internal/imaging"
	"github.com/spelprogrammen/portraits/internal/render"
)

type processOptions struct {
	root          string
	year          string
	all           bool
	minDiff       float64
	threshold     float64
	noAutoCorrect bool
	output        string
	orientation   string
	concurrency   int
	skipPDF       bool
}

type orientation int

const (
	portraitPage orientation = iota
	landscapePage
)

func executeProcess(ctx context.Context, opts processOptions) error {
	root := resolveRoot(opts.root)
	outputDir := resolveOutput(opts.output)

	years, err := discover.Years(root, opts.year, opts.all)
	if err != nil {
		return err
	}

	orientations, err := parseOrientations(opts.orientation)
	if err != nil {
		return err
	}

	if !opts.noAutoCorrect {
		classify.CheckCorrectionThreshold(opts.threshold)
	}

	runID := uuid.NewString()
	slog.Info("Starting portrait run", "run_id", runID, "root", root, "years", len(years))

	dec := imaging.NewDecoder()
	for _, year := range years {
		if err := processYear(ctx, year, opts, orientations, outputDir, runID, dec); err != nil {
			return fmt.Errorf("failed to process %s: %w", year.Code, err)
		}
	}

	if !opts.skipPDF {
		fmt.Printf("\nCollages saved to: %s\n", outputDir)
	}
	return nil
}

func processYear(ctx context.Context, year discover.Year, opts processOptions, orientations []orientation, outputDir, runID string, dec *imaging.Decoder) error {
	fmt.Printf("\n%s\n", strings.Repeat("=", 70))
	fmt.Printf("Processing %s\n", year.Code)
	fmt.Println(strings.Repeat("=", 70))

	files, err := discover.Portraits(year.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		slog.Warn("No portraits found", "dir", year.Dir)
		return nil
	}

	slog.Info("Classifying portraits", "year", year.Code, "count", len(files), "min_diff", opts.minDiff)
	results, err := classify.ClassifyAll(ctx, files, opts.minDiff, opts.concurrency)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
			slog.Warn("Failed to classify portrait", "file", filepath.Base(r.Path), "error", r.Error)
			continue
		}
		slog.Debug("Classified portrait",
			"file", filepath.Base(r.Path),
			"category", r.Category.String(),
			"rgb", fmt.Sprintf("(%.1f, %.1f, %.1f)", r.Sample.R, r.Sample.G, r.Sample.B),
			"diff", fmt.Sprintf("%+.1f", r.Sample.Diff()))
	}

	moved := 0
	if !opts.noAutoCorrect {
		moved = classify.Correct(results, opts.threshold)
	}

	g := groups.FromResults(results)
	if err := g.Save(year.Dir); err != nil {
		return err
	}

	records := audit.BuildRecords(runID, year.Code, results)
	if err := audit.Write(filepath.Join(year.Dir, audit.Filename), records); err != nil {
		return err
	}

	printYearSummary(year.Code, g, moved, failed)

	if opts.skipPDF {
		return nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	both := len(orientations) > 1
	for _, o := range orientations {
		if err := renderGroup(g.Green, "speldesignstudenter", "Speldesignstudenter", year.Code, o, both, outputDir, dec); err != nil {
			return err
		}
		if err := renderGroup(g.Orange, "spelgrafikstudenter", "Spelgrafikstudenter", year.Code, o, both, outputDir, dec); err != nil {
			return err
		}
	}
	return nil
}

// renderGroup writes one shirt group's collage, skipping empty groups
func renderGroup(paths []string, prefix, titlePrefix, code string, o orientation, both bool, outputDir string, dec *imaging.Decoder) error {
	if len(paths) == 0 {
		slog.Warn("No portraits in group, skipping collage", "group", prefix, "year", code)
		return nil
	}
	name := pdfName(prefix, code, o, both)
	title := fmt.Sprintf("%s %s", titlePrefix, code)
	return render.Collage(paths, filepath.Join(outputDir, name), title, o == landscapePage, dec)
}

// pdfName builds the collage file name. The orientation suffix only
// appears when both orientations are rendered.
func pdfName(prefix, code string, o orientation, both bool) string {
	name := fmt.Sprintf("%s_%s", prefix, strings.ToLower(code))
	if both {
		if o == landscapePage {
			name += "_landscape"
		} else {
			name += "_portrait"
		}
	}
	return name + ".pdf"
}

func parseOrientations(s string) ([]orientation, error) {
	switch strings.ToLower(s) {
	case "", "portrait":
		return []orientation{portraitPage}, nil
	case "landscape":
		return []orientation{landscapePage}, nil
	case "both":
		return []orientation{portraitPage, landscapePage}, nil
	default:
		return nil, fmt.Errorf("unsupported orientation: %s (supported: portrait, landscape, both)", s)
	}
}

func printYearSummary(code string, g *groups.Groups, moved, failed int) {
	fmt.Println("\n========================================")
	fmt.Printf("%s Summary\n", code)
	fmt.Println("========================================")
	fmt.Printf("Green shirts:       %d\n", g.Stats.GreenCount)
	fmt.Printf("Orange shirts:      %d\n", g.Stats.OrangeCount)
	fmt.Printf("Unknown:            %d\n", g.Stats.UnknownCount)
	fmt.Printf("Auto-corrected:     %d\n", moved)
	fmt.Printf("Failed to read:     %d\n", failed)
	fmt.Printf("Total:              %d\n", g.Stats.Total)
	fmt.Println("========================================")
}

// resolveRoot applies the PORTRAITS_ROOT fallback
func resolveRoot(root string) string {
	if root == "" {
		root = os.Getenv("PORTRAITS_ROOT")
	}
	if root == "" {
		root = "."
	}
	return root
}

// resolveOutput applies the PORTRAITS_OUTPUT fallback
func resolveOutput(output string) string {
	if output == "" {
		output = os.Getenv("PORTRAITS_OUTPUT")
	}
	if output == "" {
		output = "Collages"
	}
	return output
}
