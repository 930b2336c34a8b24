package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

func TestDefaultMazesLoad(t *testing.T) {
	mazes, err := levels.Default().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(mazes) < 2 {
		t.Fatalf("expected at least 2 built-in mazes, got %d", len(mazes))
	}
	if mazes[0].ID != "arcade" || mazes[1].ID != "twin" {
		t.Errorf("campaign order = %s, %s; want arcade, twin", mazes[0].ID, mazes[1].ID)
	}
	for _, m := range mazes {
		if len(m.Ghosts) != 4 {
			t.Errorf("maze %s has %d ghosts, want 4", m.ID, len(m.Ghosts))
		}
		if err := core.ValidateMaze(m); err != nil {
			t.Errorf("maze %s: %v", m.ID, err)
		}
	}
}

func TestDefaultMazeOverrides(t *testing.T) {
	l := levels.Default()

	arcade, err := l.LoadByID("arcade")
	if err != nil {
		t.Fatalf("LoadByID(arcade): %v", err)
	}
	if arcade.Ghosts[0].Home != core.C(10, 9) {
		t.Errorf("blinky home = %v, want (10,9)", arcade.Ghosts[0].Home)
	}

	twin, err := l.LoadByID("twin")
	if err != nil {
		t.Fatalf("LoadByID(twin): %v", err)
	}
	if twin.Name != "Twin Gates" {
		t.Errorf("twin name = %q", twin.Name)
	}
	if twin.Ghosts[0].Corner != core.C(0, 0) || twin.Ghosts[3].Corner != core.C(20, 20) {
		t.Errorf("twin corners not applied: %+v", twin.Ghosts)
	}
}

func TestCheckReportsBadFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"mazes/a.yaml":    {Data: []byte("id: ok\nlayout: |\n  #####\n  #P.G#\n  #####\n")},
		"mazes/b.yaml":    {Data: []byte("id: ragged\nlayout: |\n  ####\n  #P.G#\n")},
		"mazes/c.toml":    {Data: []byte("id = \"extra\"\nlayout = '''\n#####\n#P.G#\n#####\n'''\ncolour = \"red\"\n")},
		"mazes/d.yml":     {Data: []byte("id: typo\nlayuot: |\n  #P.G#\n")},
		"mazes/e.yaml":    {Data: []byte("id: walled\nlayout: |\n  #######\n  #P G#.#\n  #######\n")},
		"mazes/notes.txt": {Data: []byte("ignored")},
	}
	results, err := levels.NewFSLoader(fsys, "mazes").Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("a.yaml: %v", results[0].Err)
	}
	for _, r := range results[1:] {
		if r.Err == nil {
			t.Errorf("%s: expected an error", r.Path)
		}
	}
	for _, i := range []int{1, 4} {
		if !errors.Is(results[i].Err, core.ErrInvalidLevelConfig) {
			t.Errorf("%s: error %v should be a level config error", results[i].Path, results[i].Err)
		}
	}

	mazes, err := levels.NewFSLoader(fsys, "mazes").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(mazes) != 1 || mazes[0].ID != "ok" {
		t.Errorf("LoadAll should keep only the valid maze, got %d", len(mazes))
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, err := levels.NewLoader(t.TempDir()).LoadAll()
	var ce core.ConfigError
	if !errors.As(err, &ce) || ce.Code != core.CodeNoMazes {
		t.Errorf("error = %v, want NO_MAZES", err)
	}
}

func TestLoaderFromDisk(t *testing.T) {
	dir := t.TempDir()
	data := []byte("id: disk\nname: Disk\nlayout: |\n  #######\n  #P..oG#\n  #######\nghosts:\n  - name: sue\n    corner: {x: 0, y: 0}\n")
	if err := os.WriteFile(filepath.Join(dir, "disk.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	l := levels.NewLoader(dir)
	m, err := l.LoadFile("disk.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Ghosts[0].Name != "sue" || m.Ghosts[0].Corner != core.C(0, 0) {
		t.Errorf("ghost = %+v", m.Ghosts[0])
	}
	if m.Grid.PelletsLeft() != 3 {
		t.Errorf("PelletsLeft = %d, want 3", m.Grid.PelletsLeft())
	}

	ids, err := l.ListIDs()
	if err != nil || len(ids) != 1 || ids[0] != "disk" {
		t.Errorf("ListIDs = %v, %v", ids, err)
	}
}

func TestSelect(t *testing.T) {
	l := levels.Default()
	mazes, err := l.Select([]string{"twin", "arcade"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(mazes) != 2 || mazes[0].ID != "twin" {
		t.Errorf("Select order wrong: %v", mazes)
	}
	if _, err := l.Select([]string{"missing"}); err == nil {
		t.Error("Select should fail for an unknown id")
	}
}

func TestTooManyGhostEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"m/x.yaml": {Data: []byte("id: x\nlayout: |\n  #####\n  #P.G#\n  #####\nghosts:\n  - name: a\n  - name: b\n")},
	}
	_, err := levels.NewFSLoader(fsys, "m").LoadFile("x.yaml")
	if err == nil {
		t.Error("expected error for more ghost entries than spawns")
	}
}
