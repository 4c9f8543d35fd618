// Package static serves the content tables compiled into the binary. They
// are the last resort when the backend and the snapshot store both miss.
package static

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"medsite/internal/ports/output"
	"medsite/pkg/multilingual"
)

//go:embed data/*.json
var dataFS embed.FS

var _ output.FallbackData = (*Tables)(nil)

// Tables holds one record table per resource name.
type Tables struct {
	tables map[string][]multilingual.Record
}

// Load parses every embedded table.
func Load() (*Tables, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS parses every *.json file in dir of fsys; the file name without
// extension is the resource name.
func LoadFS(fsys fs.FS, dir string) (*Tables, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("static: read %s: %w", dir, err)
	}
	t := &Tables{tables: make(map[string][]multilingual.Record, len(entries))}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("static: read %s: %w", e.Name(), err)
		}
		var records []multilingual.Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("static: decode %s: %w", e.Name(), err)
		}
		t.tables[strings.TrimSuffix(e.Name(), ".json")] = records
	}
	return t, nil
}

// Records returns the table for resource. The slice is shared; callers
// localize through copies and must not modify it.
func (t *Tables) Records(resource string) ([]multilingual.Record, bool) {
	r, ok := t.tables[resource]
	return r, ok
}

// Resources lists the resources that have a table.
func (t *Tables) Resources() []string {
	out := make([]string, 0, len(t.tables))
	for name := range t.tables {
		out = append(out, name)
	}
	return out
}
