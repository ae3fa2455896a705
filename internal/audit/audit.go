package audit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/spelprogrammen/portraits/internal/classify"
)

// Filename is the audit trail written next to the grouping file in
// each year folder
const Filename = "portrait_audit.parquet"

// Record is one classified portrait in the audit trail
type Record struct {
	RunID       string  `parquet:"run_id"`
	Year        string  `parquet:"year"`
	File        string  `parquet:"file"`
	AvgR        float64 `parquet:"avg_r"`
	AvgG        float64 `parquet:"avg_g"`
	AvgB        float64 `parquet:"avg_b"`
	Diff        float64 `parquet:"diff"`
	Category    string  `parquet:"category"`
	Corrected   bool    `parquet:"corrected"`
	DecodeError string  `parquet:"decode_error,optional"`
	ProcessedAt int64   `parquet:"processed_at"`
}

// BuildRecords flattens classification results into audit records
func BuildRecords(runID, year string, results []classify.Result) []Record {
	now := time.Now().UnixMilli()
	records := make([]Record, 0, len(results))
	for _, r := range results {
		records = append(records, Record{
			RunID:       runID,
			Year:        year,
			File:        filepath.Base(r.Path),
			AvgR:        r.Sample.R,
			AvgG:        r.Sample.G,
			AvgB:        r.Sample.B,
			Diff:        r.Sample.Diff(),
			Category:    r.Category.String(),
			Corrected:   r.Corrected,
			DecodeError: r.Error,
			ProcessedAt: now,
		})
	}
	return records
}

// Write stores records as a parquet file, replacing any previous
// audit trail at path
func Write(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audit file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[Record](f)
	if _, err := w.Write(records); err != nil {
		return fmt.Errorf("failed to write audit records: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close audit file: %w", err)
	}

	slog.Debug("Wrote audit trail", "path", path, "records", len(records))
	return nil
}

// Read loads every record from an audit file
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat audit file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Record](pf)
	defer reader.Close()

	var records []Record
	rows := make([]Record, 128) // Read in batches
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Read audit trail", "path", path, "records", len(records))
	return records, nil
}
