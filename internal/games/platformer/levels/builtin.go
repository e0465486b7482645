package levels

import (
	"embed"
	"fmt"
	"os"
	"path"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels compiled into the binary, in file name order.
// An invalid embedded level is a build defect and is reported as an error.
func Builtin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading embedded levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded level %s: %w", name, err)
		}
		lvl, err := Parse(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", name, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// Catalog returns the built-in levels followed by the levels found under dir.
// A user level whose ID matches a built-in one replaces it in place. An empty
// dir or one that does not exist yields only the built-ins.
func Catalog(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return levels, nil
	}

	user, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(levels))
	for i, lvl := range levels {
		index[lvl.ID] = i
	}
	for _, lvl := range user {
		if i, ok := index[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		index[lvl.ID] = len(levels)
		levels = append(levels, lvl)
	}
	return levels, nil
}
