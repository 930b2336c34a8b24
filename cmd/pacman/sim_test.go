package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/logging"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func TestSimulateIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	setup := pacman.Setup{Difficulty: config.DifficultyNormal}

	a, err := simulate(context.Background(), setup, 42, 3000, 0, nil)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(context.Background(), setup, 42, 3000, 0, nil)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a.Hash != b.Hash || a.Final.Score != b.Final.Score || a.Final.Tick != b.Final.Tick {
		t.Errorf("same seed gave different runs: %s/%d vs %s/%d", a.Hash, a.Final.Score, b.Hash, b.Final.Score)
	}
	if a.RunID == b.RunID {
		t.Error("each run gets its own ID")
	}
	if a.Board != "normal" || len(a.Hash) != 16 {
		t.Errorf("result board=%q hash=%q", a.Board, a.Hash)
	}
}

func TestSimulatePrintsEveryN(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer

	_, err := simulate(context.Background(), pacman.Setup{}, 1, 250, 100, &out)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if n := strings.Count(out.String(), "tick "); n != 2 {
		t.Errorf("expected 2 board dumps in 250 ticks, got %d:\n%s", n, out.String())
	}
}

func TestSimulateCanceled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := simulate(ctx, pacman.Setup{}, 1, 0, 0, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Final.Tick != 0 {
		t.Errorf("canceled run advanced to tick %d", res.Final.Tick)
	}
}

func TestSimulateBadSetup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := simulate(context.Background(), pacman.Setup{MazeIDs: []string{"missing"}}, 1, 10, 0, nil)
	if err == nil {
		t.Fatal("unknown maze should fail")
	}
}

// simFlags sets the sim command flags for one test and restores them after.
func simFlags(t *testing.T, db string, seed int64, ticks int) {
	t.Helper()
	oldDB, oldSeed, oldTicks := flagDBPath, flagSeed, flagSimTicks
	oldSave, oldReplay, oldDifficulty := flagSimSave, flagSimReplay, flagDifficulty
	t.Cleanup(func() {
		flagDBPath, flagSeed, flagSimTicks = oldDB, oldSeed, oldTicks
		flagSimSave, flagSimReplay, flagDifficulty = oldSave, oldReplay, oldDifficulty
	})
	flagDBPath, flagSeed, flagSimTicks = db, seed, ticks
	flagSimSave, flagSimReplay, flagDifficulty = false, "", ""
}

func TestExecSimSaveAndReplay(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "scores.db")
	simFlags(t, db, 7, 300)
	logger := logging.Discard()

	flagSimSave = true
	var out bytes.Buffer
	ok, err := execSim(&out, logger)
	if err != nil || !ok {
		t.Fatalf("execSim(save) = %v, %v\n%s", ok, err, out.String())
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	runs, err := store.RunsBySeed(7)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RunsBySeed = %v, %v; want one run", runs, err)
	}
	bad := runs[0]
	bad.RunID = "tampered"
	bad.Hash = "0000000000000000"
	if _, err := store.SaveRun(bad); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	tests := []struct {
		run  string
		ok   bool
		line string
	}{
		{runs[0].RunID, true, "replay  OK"},
		{"tampered", false, "replay  MISMATCH"},
	}
	for _, tt := range tests {
		t.Run(tt.run, func(t *testing.T) {
			simFlags(t, db, 0, 0)
			flagSimReplay = tt.run
			var out bytes.Buffer
			ok, err := execSim(&out, logger)
			if err != nil {
				t.Fatalf("execSim(replay) failed: %v", err)
			}
			if ok != tt.ok || !strings.Contains(out.String(), tt.line) {
				t.Errorf("replay ok = %v, want %v; output:\n%s", ok, tt.ok, out.String())
			}
		})
	}
}

func TestExecSimUnknownReplayReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	simFlags(t, filepath.Join(t.TempDir(), "scores.db"), 0, 0)
	flagSimReplay = "missing"

	ok, err := execSim(&bytes.Buffer{}, logging.Discard())
	if !errors.Is(err, storage.ErrNotFound) || ok {
		t.Errorf("execSim = %v, %v; want ErrNotFound", ok, err)
	}
}
