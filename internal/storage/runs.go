package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveRun records a headless simulation. A missing RunID is generated.
func (s *Store) SaveRun(r SimRun) (SimRun, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO sim_runs (run_id, board, seed, ticks, score, level, state, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Board, r.Seed, int64(r.Ticks), r.Score, r.Level, r.State, r.Hash,
	)
	if err != nil {
		return SimRun{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return SimRun{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

// RunByID retrieves a simulation run by its run ID.
// Returns ErrNotFound if no run matches.
func (s *Store) RunByID(runID string) (SimRun, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, board, seed, ticks, score, level, state, hash, created_at
		 FROM sim_runs
		 WHERE run_id = ?`,
		runID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SimRun{}, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return SimRun{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// RunsBySeed retrieves every run recorded for a seed, oldest first.
// Equal seeds on the same board and rules should report equal hashes.
func (s *Store) RunsBySeed(seed int64) ([]SimRun, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, board, seed, ticks, score, level, state, hash, created_at
		 FROM sim_runs
		 WHERE seed = ?
		 ORDER BY id ASC`,
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []SimRun
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (SimRun, error) {
	var r SimRun
	var ticks int64
	var createdAt any
	if err := sc.Scan(&r.ID, &r.RunID, &r.Board, &r.Seed, &ticks, &r.Score, &r.Level, &r.State, &r.Hash, &createdAt); err != nil {
		return SimRun{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	Board      string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific board.
func (s *Store) Stats(board string) (BoardStats, error) {
	stats := BoardStats{Board: board}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE board = ?`,
		board,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return BoardStats{}, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats retrieves statistics for every board that has been played.
func (s *Store) AllStats() (map[string]BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board, COUNT(*), MAX(score), MAX(level), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY board`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]BoardStats)
	for rows.Next() {
		var st BoardStats
		var lastPlayed any
		if err := rows.Scan(&st.Board, &st.GamesCount, &st.HighScore, &st.BestLevel, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Board] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
