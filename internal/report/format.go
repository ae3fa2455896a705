package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteText renders the report as a console summary
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w, "Portrait Cohort Report")
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "Root:       %s\n", r.Root)
	fmt.Fprintf(w, "Generated:  %s\n", r.GeneratedAt.Format(time.RFC3339))

	for _, y := range r.Years {
		fmt.Fprintf(w, "\n%s\n", y.Year)
		fmt.Fprintln(w, strings.Repeat("-", 70))
		fmt.Fprintf(w, "  Green shirts:    %d\n", y.Stats.GreenCount)
		fmt.Fprintf(w, "  Orange shirts:   %d\n", y.Stats.OrangeCount)
		fmt.Fprintf(w, "  Unknown:         %d\n", y.Stats.UnknownCount)
		fmt.Fprintf(w, "  Total:           %d\n", y.Stats.Total)
		if !y.HasAudit {
			fmt.Fprintln(w, "  (no audit trail)")
			continue
		}
		fmt.Fprintf(w, "  Auto-corrected:  %d\n", y.Corrected)
		fmt.Fprintf(w, "  Failed to read:  %d\n", y.Failed)

		// Sort groups for consistent output
		var categories []string
		for category := range y.Diff {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			d := y.Diff[category]
			fmt.Fprintf(w, "  %-8s G-R diff: mean %+.1f, median %+.1f, sd %.1f, range [%+.1f, %+.1f]\n",
				category, d.Mean, d.Median, d.StdDev, d.Min, d.Max)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "Totals: %d green, %d orange, %d unknown (%d portraits)\n",
		r.Totals.GreenCount, r.Totals.OrangeCount, r.Totals.UnknownCount, r.Totals.Total)
	fmt.Fprintln(w, strings.Repeat("=", 70))
}

// WriteYAML renders the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON renders the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
