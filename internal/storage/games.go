package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// GameRecord is one completed game in the history table.
type GameRecord struct {
	ID         string
	Player     string
	Difficulty memory.Difficulty
	Theme      string
	Seconds    int
	Moves      int
	Pairs      int
	Accuracy   int
	MaxStreak  int
	CreatedAt  time.Time
}

// RecordFromResult builds a history record for player from a completion result.
func RecordFromResult(player string, r memory.Result) GameRecord {
	return GameRecord{
		Player:     player,
		Difficulty: r.Difficulty,
		Theme:      r.Theme,
		Seconds:    r.Seconds(),
		Moves:      r.Moves,
		Pairs:      r.TotalPairs,
		Accuracy:   r.Accuracy,
		MaxStreak:  r.MaxStreak,
	}
}

// DifficultySummary aggregates a player's games on one difficulty.
type DifficultySummary struct {
	Difficulty  memory.Difficulty
	Games       int
	BestSeconds int
	BestMoves   int
	AvgAccuracy float64
	LastPlayed  time.Time
}

const gameColumns = `id, player, difficulty, theme, seconds, moves, pairs, accuracy, max_streak, created_at`

// SaveGame records a completed game. A missing ID is filled with a new UUID.
// Returns the record ID.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, player, difficulty, theme, seconds, moves, pairs, accuracy, max_streak)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Player,
		string(rec.Difficulty),
		rec.Theme,
		rec.Seconds,
		rec.Moves,
		rec.Pairs,
		rec.Accuracy,
		rec.MaxStreak,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	return rec.ID, nil
}

// TopGames retrieves the player's fastest games on a difficulty.
// Ties on time are broken by fewer moves.
func (s *Store) TopGames(player string, d memory.Difficulty, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE player = ? AND difficulty = ?
		 ORDER BY seconds ASC, moves ASC, created_at ASC
		 LIMIT ?`,
		player, string(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	return scanGames(rows)
}

// RecentGames retrieves the player's most recent games, newest first.
func (s *Store) RecentGames(player string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	return scanGames(rows)
}

// GameByID retrieves a single game. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	rows, err := s.db.Query(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// Summary aggregates the player's history per difficulty.
// Difficulties without games are omitted.
func (s *Store) Summary(player string) (map[memory.Difficulty]*DifficultySummary, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MIN(seconds), MIN(moves), AVG(accuracy), MAX(created_at)
		 FROM games
		 WHERE player = ?
		 GROUP BY difficulty`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarise games: %w", err)
	}
	defer rows.Close()

	summary := make(map[memory.Difficulty]*DifficultySummary)
	for rows.Next() {
		var ds DifficultySummary
		var difficulty string
		var lastPlayed any
		if err := rows.Scan(&difficulty, &ds.Games, &ds.BestSeconds, &ds.BestMoves, &ds.AvgAccuracy, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		ds.Difficulty = memory.Difficulty(difficulty)
		ds.LastPlayed = parseTime(lastPlayed)
		summary[ds.Difficulty] = &ds
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summary, nil
}

// ClearGames deletes the player's history.
func (s *Store) ClearGames(player string) error {
	if _, err := s.db.Exec("DELETE FROM games WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// ClearAllGames deletes every player's history.
func (s *Store) ClearAllGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var difficulty string
		var createdAt any
		if err := rows.Scan(
			&g.ID,
			&g.Player,
			&difficulty,
			&g.Theme,
			&g.Seconds,
			&g.Moves,
			&g.Pairs,
			&g.Accuracy,
			&g.MaxStreak,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Difficulty = memory.Difficulty(difficulty)
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}
