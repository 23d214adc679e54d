package storage

import (
	"context"
	"database/sql"
	"fmt"

	// registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS game_events (
			game_id     TEXT    NOT NULL,
			sequence    INTEGER NOT NULL,
			turn_number INTEGER NOT NULL,
			player_id   TEXT    NOT NULL DEFAULT '',
			event_type  TEXT    NOT NULL,
			payload     TEXT    NOT NULL DEFAULT 'null',
			created_at  INTEGER NOT NULL,
			PRIMARY KEY (game_id, sequence)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_events_turn ON game_events (game_id, turn_number, sequence)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
