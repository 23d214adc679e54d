package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// EventRepository is the append-only archive of game events.
type EventRepository interface {
	Append(ctx context.Context, events []entity.Event) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]entity.Event, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type dbEvent struct {
	conn *sql.DB
}

func NewEventRepository(conn *sql.DB) EventRepository {
	return &dbEvent{
		conn: conn,
	}
}

// Append - inserts the events in one transaction. Re-appending a sequence fails on the primary key.
func (that *dbEvent) Append(ctx context.Context, events []entity.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO game_events
		(game_id, sequence, turn_number, player_id, event_type, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal event payload: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			event.GameID,
			event.Sequence,
			event.TurnNumber,
			event.PlayerID,
			string(event.Type),
			string(payload),
			event.CreatedAt.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %d: %w", event.Sequence, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}

	return nil
}

// ListByGameID - returns a game's events in sequence order; a positive limit keeps the newest ones.
func (that *dbEvent) ListByGameID(ctx context.Context, gameID string, limit int) ([]entity.Event, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := that.conn.QueryContext(ctx, `SELECT game_id, sequence, turn_number, player_id, event_type, payload, created_at
		FROM (
			SELECT * FROM game_events WHERE game_id = ? ORDER BY sequence DESC LIMIT ?
		)
		ORDER BY sequence ASC`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := make([]entity.Event, 0)
	for rows.Next() {
		var (
			event     entity.Event
			eventType string
			payload   string
			createdAt int64
		)

		err = rows.Scan(&event.GameID, &event.Sequence, &event.TurnNumber, &event.PlayerID, &eventType, &payload, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if err = json.Unmarshal([]byte(payload), &event.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
		}

		event.Type = entity.EventType(eventType)
		event.CreatedAt = time.Unix(0, createdAt).UTC()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

func (that *dbEvent) DeleteByGameID(ctx context.Context, gameID string) error {
	if _, err := that.conn.ExecContext(ctx, `DELETE FROM game_events WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	return nil
}
