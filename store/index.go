package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Index is the SQLite catalog of archived games: one row per completed
// game pointing at the parquet batch holding its turns. Thread-safe; the
// connection is capped at one writer because that is all SQLite supports.
type Index struct {
	conn *sql.DB
	mu   sync.Mutex
}

// GameRecord is one archived game outcome.
type GameRecord struct {
	GameID      uint64
	Seed        uint64
	Players     int
	Winner      string
	VictoryType string
	Turns       int
	BatchFile   string
	ArchivedAt  time.Time
}

// OpenIndex opens (or creates) the index database at dbPath.
func OpenIndex(dbPath string) (*Index, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	idx := &Index{conn: conn}
	if err := idx.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY,        -- engine game ID
		seed INTEGER NOT NULL,
		players INTEGER NOT NULL,
		winner TEXT,                   -- empty when no winner was ranked
		victory_type TEXT,             -- fleet_wipe / territory_control / economic / turn_limit
		turns INTEGER NOT NULL,
		batch_file TEXT NOT NULL,      -- parquet batch containing the turn rows
		archived_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner);
	CREATE INDEX IF NOT EXISTS idx_games_victory_type ON games(victory_type);
	`

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, err := idx.conn.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// GameExists reports whether a game ID is already indexed.
func (idx *Index) GameExists(gameID uint64) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var one int
	err := idx.conn.QueryRow("SELECT 1 FROM games WHERE id = ?", int64(gameID)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertGames records a batch of game outcomes in one transaction.
func (idx *Index) InsertGames(records []GameRecord) error {
	if len(records) == 0 {
		return nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	tx, err := idx.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO games (id, seed, players, winner, victory_type, turns, batch_file) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(
			int64(r.GameID), int64(r.Seed), r.Players, r.Winner, r.VictoryType, r.Turns, r.BatchFile,
		); err != nil {
			return fmt.Errorf("insert game %d: %w", r.GameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Stats returns the indexed game count and a per-victory-type breakdown.
func (idx *Index) Stats() (total int64, byVictory map[string]int64, err error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err = idx.conn.QueryRow("SELECT COUNT(*) FROM games").Scan(&total); err != nil {
		return 0, nil, err
	}

	rows, err := idx.conn.Query("SELECT victory_type, COUNT(*) FROM games GROUP BY victory_type")
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	byVictory = make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return 0, nil, err
		}
		byVictory[kind] = n
	}
	return total, byVictory, rows.Err()
}

// Close closes the underlying connection.
func (idx *Index) Close() error {
	return idx.conn.Close()
}
