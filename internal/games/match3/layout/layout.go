// Package layout loads fixed starting boards for the match-3 game from YAML.
//
// A layout file lists the board row by row, top row first, one digit per
// tile type:
//
//	id: stripes
//	name: Stripes
//	rows:
//	  - "01234012"
//	  - ...
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLayout is the on-disk structure of a layout file.
type YAMLLayout struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Layout is a parsed and validated starting board.
type Layout struct {
	ID       string
	Name     string
	Grid     engine.Grid
	FilePath string
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yl.Rows) != engine.Size {
		return Layout{}, fmt.Errorf("want %d rows, got %d", engine.Size, len(yl.Rows))
	}

	l := Layout{ID: yl.ID, Name: yl.Name}
	for x, row := range yl.Rows {
		row = strings.TrimSpace(row)
		if len(row) != engine.Size {
			return Layout{}, fmt.Errorf("row %d: want %d tiles, got %d", x, engine.Size, len(row))
		}
		for y := range engine.Size {
			c := row[y]
			if c < '0' || c >= '0'+engine.NumColors {
				return Layout{}, fmt.Errorf("row %d col %d: invalid tile %q", x, y, c)
			}
			l.Grid[x][y] = engine.Tile(c - '0')
		}
	}

	if l.ID == "" {
		return Layout{}, fmt.Errorf("missing id")
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	return l, nil
}

// Encode renders a grid back into the YAML file format.
func Encode(id, name string, g engine.Grid) ([]byte, error) {
	yl := YAMLLayout{ID: id, Name: name, Rows: make([]string, engine.Size)}
	for x := range engine.Size {
		var sb strings.Builder
		for y := range engine.Size {
			t := g[x][y]
			if t < 0 || int(t) >= engine.NumColors {
				return nil, fmt.Errorf("row %d col %d: tile %d out of range", x, y, t)
			}
			sb.WriteByte(byte('0' + t))
		}
		yl.Rows[x] = sb.String()
	}
	return yaml.Marshal(&yl)
}

// LoadFile reads and parses a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	l.FilePath = path
	return l, nil
}

// LoadAll scans root recursively and returns every valid layout sorted by ID.
// Files that fail to parse are skipped.
func LoadAll(root string) ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		l, err := LoadFile(path)
		if err != nil {
			return nil
		}
		layouts = append(layouts, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}
