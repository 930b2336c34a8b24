// Package levels provides maze loading for Pacman.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels/formats"
)

//go:embed mazes
var builtin embed.FS

// Loader handles loading mazes from a directory tree.
type Loader struct {
	Root string // shown in errors
	fsys fs.FS
	dir  string // walk root inside fsys
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), dir: "."}
}

// NewFSLoader creates a loader over dir inside an arbitrary file system.
func NewFSLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{Root: dir, fsys: fsys, dir: dir}
}

// Default returns a loader over the built-in mazes.
func Default() *Loader {
	l := NewFSLoader(builtin, "mazes")
	l.Root = "built-in mazes"
	return l
}

// Result is the outcome of loading one maze file.
type Result struct {
	Path string
	Maze *core.Maze
	Err  error
}

// Check loads and validates every maze file, reporting each one.
// Results are sorted by path.
func (l *Loader) Check() ([]Result, error) {
	var results []Result

	err := fs.WalkDir(l.fsys, l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}
		m, err := l.load(p)
		results = append(results, Result{Path: p, Maze: m, Err: err})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// LoadAll loads every valid maze, sorted by file path so numbered files
// set the campaign order. Invalid files are skipped; use Check to see why.
func (l *Loader) LoadAll() ([]*core.Maze, error) {
	results, err := l.Check()
	if err != nil {
		return nil, err
	}

	var mazes []*core.Maze
	seen := make(map[string]bool)
	for _, r := range results {
		if r.Err != nil || seen[r.Maze.ID] {
			continue
		}
		seen[r.Maze.ID] = true
		mazes = append(mazes, r.Maze)
	}
	if len(mazes) == 0 {
		return nil, core.ConfigError{Code: core.CodeNoMazes, Message: fmt.Sprintf("no valid mazes under %s", l.Root)}
	}
	return mazes, nil
}

// LoadFile loads and validates a single maze file relative to the loader root.
func (l *Loader) LoadFile(name string) (*core.Maze, error) {
	return l.load(path.Join(l.dir, name))
}

func (l *Loader) load(name string) (*core.Maze, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}

	parsed, err := formats.Parse(data, path.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", name, err)
	}
	m, err := parsed.ToMaze()
	if err != nil {
		return nil, fmt.Errorf("building maze %s: %w", name, err)
	}
	if err := core.ValidateMaze(m); err != nil {
		return nil, fmt.Errorf("validating maze %s: %w", name, err)
	}
	return m, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (*core.Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("maze not found: %s", id)
}

// ListIDs returns all maze IDs in campaign order.
func (l *Loader) ListIDs() ([]string, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(mazes))
	for i, m := range mazes {
		ids[i] = m.ID
	}
	return ids, nil
}

// Select returns the mazes named by ids in that order. An empty list
// returns every maze.
func (l *Loader) Select(ids []string) ([]*core.Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil || len(ids) == 0 {
		return mazes, err
	}
	byID := make(map[string]*core.Maze, len(mazes))
	for _, m := range mazes {
		byID[m.ID] = m
	}
	out := make([]*core.Maze, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[strings.TrimSpace(id)]
		if !ok {
			return nil, fmt.Errorf("maze not found: %s", id)
		}
		out = append(out, m)
	}
	return out, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
