package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagSimTicks  int
	flagSimRender bool
	flagSimEvery  int
	flagSimSave   bool
	flagSimReplay string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a screen",
	Long: `Run a game headless with the autopilot at full speed and print a
summary with a snapshot hash. The same seed, rules and mazes always give
the same hash.

With --save the run is recorded in the scores database and compared to
earlier runs with the same seed. --replay re-runs a recorded run and
checks that its hash still matches.

Examples:
  pacman sim --seed 42
  pacman sim --seed 42 --ticks 3000 --render
  pacman sim --seed 42 --every 600 --log-level debug
  pacman sim --seed 42 --save
  pacman sim --replay 2f1c...`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum ticks to simulate (0 = until game over)")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final board")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Print the board every N ticks")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagSimReplay, "replay", "", "Re-run a recorded run ID and compare hashes")
}

// simResult is a finished headless run.
type simResult struct {
	RunID string
	Board string
	Seed  int64
	Final core.Snapshot
	Hash  string
	Took  time.Duration
}

// simulate plays one game with the autopilot. Every > 0 writes the board
// to w at that tick interval.
func simulate(ctx context.Context, setup pacman.Setup, seed int64, maxTicks, every int, w io.Writer) (simResult, error) {
	campaign, err := pacman.LoadCampaign(setup)
	if err != nil {
		return simResult{}, err
	}
	sim, err := setup.NewSim(campaign, seed)
	if err != nil {
		return simResult{}, err
	}

	var pilot core.Pilot = core.NewAutopilot(rand.New(rand.NewSource(seed)))
	if every > 0 && w != nil {
		inner := pilot
		pilot = core.PilotFunc(func(s core.Snapshot) core.Dir {
			if s.Tick > 0 && s.Tick%uint64(every) == 0 {
				fmt.Fprintf(w, "tick %d  score %d  level %d  lives %d\n%s\n", s.Tick, s.Score, s.Level, s.Lives, core.RenderASCII(s))
			}
			return inner.Next(s)
		})
	}

	start := time.Now()
	final, err := core.Run(ctx, sim, pilot, maxTicks)
	res := simResult{
		RunID: uuid.NewString(),
		Board: string(campaign.Difficulty),
		Seed:  seed,
		Final: final,
		Hash:  fmt.Sprintf("%016x", final.Hash()),
		Took:  time.Since(start),
	}
	return res, err
}

func runSim(_ *cobra.Command, _ []string) {
	ok, err := execSim(os.Stdout, stderrLogger())
	if err != nil {
		fail(os.Stderr, "%v", err)
	}
	if !ok {
		os.Exit(2)
	}
}

// execSim runs the sim command. It returns false when a replay no longer
// matches its recording. The store is closed before it returns.
func execSim(w io.Writer, logger *log.Logger) (bool, error) {
	var replay *storage.SimRun
	var store *storage.Store
	if flagSimSave || flagSimReplay != "" {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return false, fmt.Errorf("opening scores database: %w", err)
		}
		defer closeStore(store, logger)
	}
	if flagSimReplay != "" {
		run, err := store.RunByID(flagSimReplay)
		if err != nil {
			return false, err
		}
		replay = &run
		flagSeed = run.Seed
		flagSimTicks = int(run.Ticks)
		flagDifficulty = run.Board
	}

	setup, err := configureGames(logger)
	if err != nil {
		return false, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("simulation starting", "seed", seed, "ticks", flagSimTicks, "difficulty", setup.Difficulty)
	res, err := simulate(ctx, setup, seed, flagSimTicks, flagSimEvery, w)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("simulation interrupted", "tick", res.Final.Tick)
	case err != nil:
		return false, err
	}

	if flagSimRender {
		fmt.Fprintln(w, core.RenderASCII(res.Final))
	}
	printSimSummary(w, res)

	switch {
	case replay != nil:
		return checkReplay(w, *replay, res), nil
	case flagSimSave:
		return true, saveSimRun(w, store, logger, res)
	}
	return true, nil
}

func printSimSummary(w io.Writer, res simResult) {
	s := res.Final
	fmt.Fprintf(w, "run     %s\n", res.RunID)
	fmt.Fprintf(w, "board   %s\n", res.Board)
	fmt.Fprintf(w, "seed    %d\n", res.Seed)
	fmt.Fprintf(w, "ticks   %d\n", s.Tick)
	fmt.Fprintf(w, "state   %s\n", s.State)
	fmt.Fprintf(w, "score   %d\n", s.Score)
	fmt.Fprintf(w, "level   %d\n", s.Level)
	fmt.Fprintf(w, "lives   %d\n", s.Lives)
	fmt.Fprintf(w, "maze    %s\n", s.MazeID)
	fmt.Fprintf(w, "hash    %s\n", res.Hash)
	fmt.Fprintf(w, "took    %s\n", res.Took.Round(time.Millisecond))
}

// checkReplay compares a re-run with its recording.
func checkReplay(w io.Writer, want storage.SimRun, got simResult) bool {
	if want.Hash == got.Hash && want.Score == got.Final.Score {
		fmt.Fprintf(w, "replay  OK (matches run %s)\n", want.RunID)
		return true
	}
	fmt.Fprintf(w, "replay  MISMATCH: recorded hash %s score %d, got hash %s score %d\n",
		want.Hash, want.Score, got.Hash, got.Final.Score)
	return false
}

// saveSimRun records the run and reports earlier runs with the same seed.
func saveSimRun(w io.Writer, store *storage.Store, logger *log.Logger, res simResult) error {
	previous, err := store.RunsBySeed(res.Seed)
	if err != nil {
		logger.Warn("could not read earlier runs", "seed", res.Seed, "error", err)
	}

	saved, err := store.SaveRun(storage.SimRun{
		RunID: res.RunID,
		Board: res.Board,
		Seed:  res.Seed,
		Ticks: res.Final.Tick,
		Score: res.Final.Score,
		Level: res.Final.Level,
		State: res.Final.State.String(),
		Hash:  res.Hash,
	})
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	fmt.Fprintf(w, "saved   %s\n", saved.RunID)

	for _, p := range previous {
		if p.Board != res.Board || p.Ticks != res.Final.Tick {
			continue
		}
		if p.Hash != res.Hash {
			logger.Warn("run differs from an earlier run with the same seed", "earlier", p.RunID, "hash", p.Hash)
			continue
		}
		logger.Info("run matches an earlier run", "earlier", p.RunID)
	}
	return nil
}
