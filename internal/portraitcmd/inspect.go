package portraitcmd

import (
	"fmt"
	"strings"

	"github.com/spelprogrammen/portraits/internal/audit"
)

func executeInspect(auditPath, category string, limit int) error {
	records, err := audit.Read(auditPath)
	if err != nil {
		return err
	}

	category = strings.ToLower(category)

	fmt.Printf("Loaded %d records from %s\n", len(records), auditPath)
	fmt.Println(strings.Repeat("=", 100))
	fmt.Printf("%-36s %-9s %7s %7s %7s %8s %-9s %s\n",
		"FILE", "CATEGORY", "R", "G", "B", "G-R", "CORRECTED", "ERROR")
	fmt.Println(strings.Repeat("-", 100))

	shown := 0
	for _, r := range records {
		if category != "" && r.Category != category {
			continue
		}
		if limit > 0 && shown >= limit {
			break
		}

		corrected := ""
		if r.Corrected {
			corrected = "yes"
		}
		fmt.Printf("%-36s %-9s %7.1f %7.1f %7.1f %+8.1f %-9s %s\n",
			truncate(r.File, 36), r.Category, r.AvgR, r.AvgG, r.AvgB, r.Diff, corrected, r.DecodeError)
		shown++
	}

	fmt.Println(strings.Repeat("=", 100))
	fmt.Printf("Showing %d of %d records\n", shown, len(records))
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
