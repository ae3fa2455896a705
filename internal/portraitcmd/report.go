package portraitcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spelprogrammen/portraits/internal/discover"
	"github.com/spelprogrammen/portraits/internal/report"
)

func executeReport(root, year string, all bool, format, output string) error {
	root = resolveRoot(root)
	if year == "" {
		all = true
	}

	years, err := discover.Years(root, year, all)
	if err != nil {
		return err
	}

	rep, err := report.Collect(root, years)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(format) {
	case "", "text":
		rep.WriteText(w)
	case "yaml":
		return rep.WriteYAML(w)
	case "json":
		return rep.WriteJSON(w)
	case "html":
		return rep.WriteHTML(w)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, yaml, json, html)", format)
	}

	if output != "" {
		fmt.Printf("Report saved to: %s\n", output)
	}
	return nil
}
