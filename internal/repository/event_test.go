package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenced(gameID string, from, to int64) []entity.Event {
	var out []entity.Event
	for seq := from; seq <= to; seq++ {
		out = append(out, entity.Event{
			GameID:     gameID,
			Sequence:   seq,
			TurnNumber: 1,
			PlayerID:   "p0",
			Type:       entity.EventDiceRolled,
			Payload:    map[string]any{"total": 7},
			CreatedAt:  time.Unix(1700000000, seq).UTC(),
		})
	}
	return out
}

func TestEventRepository_Append(t *testing.T) {
	t.Run("Appended events read back in order", func(t *testing.T) {
		ctx := context.Background()
		eventRepo := NewEventRepository(suite.NewSQLite(ctx, t))

		// Given: two batches for one game and one for another
		require.NoError(t, eventRepo.Append(ctx, sequenced("g1", 1, 3)))
		require.NoError(t, eventRepo.Append(ctx, sequenced("g1", 4, 5)))
		require.NoError(t, eventRepo.Append(ctx, sequenced("g2", 1, 2)))

		// When: listing the first game
		events, err := eventRepo.ListByGameID(ctx, "g1", 0)

		// Then: only its events come back, chronologically, with payloads intact
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i, event := range events {
			assert.Equal(t, int64(i+1), event.Sequence)
			assert.Equal(t, "g1", event.GameID)
			assert.Equal(t, entity.EventDiceRolled, event.Type)
			assert.InDelta(t, 7, event.Payload["total"], 0)
			assert.Equal(t, time.Unix(1700000000, int64(i+1)).UTC(), event.CreatedAt)
		}
	})

	t.Run("A sequence can't be appended twice", func(t *testing.T) {
		ctx := context.Background()
		eventRepo := NewEventRepository(suite.NewSQLite(ctx, t))

		require.NoError(t, eventRepo.Append(ctx, sequenced("g1", 1, 2)))

		// When: the batch overlaps an existing sequence
		err := eventRepo.Append(ctx, sequenced("g1", 2, 3))

		// Then: it fails and nothing from it is kept
		require.Error(t, err)
		events, err := eventRepo.ListByGameID(ctx, "g1", 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestEventRepository_ListByGameID(t *testing.T) {
	ctx := context.Background()
	eventRepo := NewEventRepository(suite.NewSQLite(ctx, t))
	require.NoError(t, eventRepo.Append(ctx, sequenced("g1", 1, 10)))

	t.Run("Limit keeps the newest events oldest first", func(t *testing.T) {
		events, err := eventRepo.ListByGameID(ctx, "g1", 3)

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, int64(8), events[0].Sequence)
		assert.Equal(t, int64(10), events[2].Sequence)
	})

	t.Run("Unknown game is empty", func(t *testing.T) {
		events, err := eventRepo.ListByGameID(ctx, "nope", 0)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("DeleteByGameID removes the history", func(t *testing.T) {
		require.NoError(t, eventRepo.DeleteByGameID(ctx, "g1"))

		events, err := eventRepo.ListByGameID(ctx, "g1", 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
