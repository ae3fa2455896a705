package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// yearPattern matches cohort folder names like SP23
var yearPattern = regexp.MustCompile(`^SP\d{2}$`)

// portraitExt lists the file extensions picked up as portraits
var portraitExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

// Year is one cohort folder under the portraits root
type Year struct {
	Code string // folder name, e.g. SP23
	Dir  string
}

// Normalize maps accepted year spellings to the folder form. "23",
// "sp23" and "SP23" all mean SP23.
func Normalize(year string) string {
	y := strings.ToUpper(strings.TrimSpace(year))
	if !strings.HasPrefix(y, "SP") {
		y = "SP" + y
	}
	return y
}

// Years resolves which cohort folders to work on. With all set, every
// folder under root matching the SPnn pattern is returned in name
// order; otherwise the named year folder must exist.
func Years(root, year string, all bool) ([]Year, error) {
	if all {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", root, err)
		}
		var years []Year
		for _, e := range entries {
			if e.IsDir() && yearPattern.MatchString(e.Name()) {
				years = append(years, Year{Code: e.Name(), Dir: filepath.Join(root, e.Name())})
			}
		}
		if len(years) == 0 {
			return nil, fmt.Errorf("no SPnn folders under %s", root)
		}
		sort.Slice(years, func(i, j int) bool { return years[i].Code < years[j].Code })
		return years, nil
	}

	code := Normalize(year)
	if !yearPattern.MatchString(code) {
		return nil, fmt.Errorf("invalid year %q, expected something like 23 or SP23", year)
	}
	dir := filepath.Join(root, code)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("year folder %s not found", dir)
	}
	return []Year{{Code: code, Dir: dir}}, nil
}

// Portraits lists the portrait files in a year folder, sorted by name
func Portraits(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if portraitExt[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
