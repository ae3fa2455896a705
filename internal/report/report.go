package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spelprogrammen/portraits/internal/audit"
	"github.com/spelprogrammen/portraits/internal/discover"
	"github.com/spelprogrammen/portraits/internal/groups"
)

// DiffStats summarizes the green-red difference across one shirt
// color group
type DiffStats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// YearReport is the reporting view of one processed year folder
type YearReport struct {
	Year      string               `json:"year" yaml:"year"`
	Stats     groups.Stats         `json:"stats" yaml:"stats"`
	HasAudit  bool                 `json:"has_audit" yaml:"has_audit"`
	Corrected int                  `json:"corrected" yaml:"corrected"`
	Failed    int                  `json:"failed" yaml:"failed"`
	Diff      map[string]DiffStats `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Report is the cross-year summary the report command renders
type Report struct {
	Root        string       `json:"root" yaml:"root"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Years       []YearReport `json:"years" yaml:"years"`
	Totals      groups.Stats `json:"totals" yaml:"totals"`
}

// Collect builds a report from the groupings and audit trails saved
// in the given year folders. Folders without a grouping are skipped
// with a warning.
func Collect(root string, years []discover.Year) (*Report, error) {
	rep := &Report{
		Root:        root,
		GeneratedAt: time.Now(),
	}

	for _, year := range years {
		g, err := groups.Load(year.Dir)
		if err != nil {
			slog.Warn("No grouping saved for year, skipping", "year", year.Code, "error", err)
			continue
		}

		yr := YearReport{Year: year.Code, Stats: g.Stats}

		records, err := audit.Read(filepath.Join(year.Dir, audit.Filename))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Debug("No audit trail for year", "year", year.Code, "error", err)
			}
		} else {
			yr.HasAudit = true
			yr.Corrected, yr.Failed, yr.Diff = summarizeAudit(records)
		}

		rep.Years = append(rep.Years, yr)
		rep.Totals.GreenCount += g.Stats.GreenCount
		rep.Totals.OrangeCount += g.Stats.OrangeCount
		rep.Totals.UnknownCount += g.Stats.UnknownCount
		rep.Totals.Total += g.Stats.Total
	}

	if len(rep.Years) == 0 {
		return nil, fmt.Errorf("no processed year folders under %s", root)
	}
	return rep, nil
}

// summarizeAudit derives the correction and failure counts plus the
// per-group difference statistics from one audit trail
func summarizeAudit(records []audit.Record) (corrected, failed int, diff map[string]DiffStats) {
	byCategory := make(map[string][]float64)
	for _, r := range records {
		if r.DecodeError != "" {
			failed++
			continue
		}
		if r.Corrected {
			corrected++
		}
		byCategory[r.Category] = append(byCategory[r.Category], r.Diff)
	}

	diff = make(map[string]DiffStats, len(byCategory))
	for category, values := range byCategory {
		diff[category] = diffStats(values)
	}
	return corrected, failed, diff
}

// diffStats computes summary statistics over a set of green-red
// differences
func diffStats(values []float64) DiffStats {
	if len(values) == 0 {
		return DiffStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sd := 0.0
	if len(sorted) > 1 {
		sd = stat.StdDev(sorted, nil)
	}

	return DiffStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		StdDev: sd,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}
