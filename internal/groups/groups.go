package groups

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spelprogrammen/portraits/internal/classify"
)

// Filename is the grouping file written into each year folder
const Filename = "portrait_groups.json"

// Stats summarizes a grouping. It is derived from the group slices,
// never updated in place.
type Stats struct {
	GreenCount   int `json:"green_count" yaml:"green_count"`
	OrangeCount  int `json:"orange_count" yaml:"orange_count"`
	UnknownCount int `json:"unknown_count" yaml:"unknown_count"`
	Total        int `json:"total" yaml:"total"`
}

// Groups holds the portrait paths assigned to each shirt color, in
// the order the portraits were discovered
type Groups struct {
	Green   []string `json:"green_group" yaml:"green_group"`
	Orange  []string `json:"orange_group" yaml:"orange_group"`
	Unknown []string `json:"unknown_group" yaml:"unknown_group"`
	Stats   Stats    `json:"stats" yaml:"stats"`
}

// FromResults buckets classification results by category, keeping
// their order, and fills in the derived stats
func FromResults(results []classify.Result) *Groups {
	g := &Groups{
		Green:   []string{},
		Orange:  []string{},
		Unknown: []string{},
	}
	for _, r := range results {
		switch r.Category {
		case classify.Green:
			g.Green = append(g.Green, r.Path)
		case classify.Orange:
			g.Orange = append(g.Orange, r.Path)
		default:
			g.Unknown = append(g.Unknown, r.Path)
		}
	}
	g.Stats = g.count()
	return g
}

func (g *Groups) count() Stats {
	return Stats{
		GreenCount:   len(g.Green),
		OrangeCount:  len(g.Orange),
		UnknownCount: len(g.Unknown),
		Total:        len(g.Green) + len(g.Orange) + len(g.Unknown),
	}
}

// Save writes the grouping into dir as indented JSON
func (g *Groups) Save(dir string) error {
	f, err := os.Create(filepath.Join(dir, Filename))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", Filename, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("failed to write %s: %w", Filename, err)
	}
	return nil
}

// Load reads the grouping saved in dir
func Load(dir string) (*Groups, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var g Groups
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &g, nil
}
