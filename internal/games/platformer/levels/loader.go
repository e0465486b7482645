// Package levels provides level loading for the platformer: the embedded
// built-in levels and user level directories. It depends on sim but sim does
// not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pixel-dash/internal/games/platformer/levels/formats"
	"github.com/vovakirdan/pixel-dash/internal/games/platformer/sim"
)

// Level is a validated level plus where it came from.
type Level struct {
	*sim.Level
	Metadata map[string]string
	FilePath string // empty for built-in levels
}

// Builtin reports whether the level ships with the binary.
func (l Level) Builtin() bool {
	return l.FilePath == ""
}

// FileError ties a load failure to its file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files, skipping invalid ones.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := l.walk(func(path string) {
		level, err := l.LoadFile(path)
		if err != nil {
			return
		}
		levels = append(levels, level)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Check loads every level file and returns one FileError per file that fails
// to parse or validate.
func (l *Loader) Check() ([]FileError, error) {
	var problems []FileError
	err := l.walk(func(path string) {
		if _, err := l.LoadFile(path); err != nil {
			var fe FileError
			if errors.As(err, &fe) {
				problems = append(problems, fe)
				return
			}
			problems = append(problems, FileError{Path: path, Err: err})
		}
	})
	return problems, err
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, FileError{Path: path, Err: err}
	}

	lvl, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, FileError{Path: path, Err: err}
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// walk calls fn for every supported level file under Root.
func (l *Loader) walk(fn func(path string)) error {
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		fn(path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	return nil
}

// Parse decodes and validates level data in the format implied by ext.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}

	built, err := parsed.Build()
	if err != nil {
		return Level{}, err
	}
	return Level{Level: built, Metadata: parsed.Metadata}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
