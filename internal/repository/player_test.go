package repository

import (
	"testing"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asHash - what HGETALL hands back for fields written by HSET.
func asHash(t *testing.T, fields map[string]any) map[string]string {
	t.Helper()

	out := make(map[string]string, len(fields))
	for key, value := range fields {
		raw, ok := value.([]byte)
		require.True(t, ok, "field %s is not JSON bytes", key)
		out[key] = string(raw)
	}

	return out
}

func TestPlayerHash(t *testing.T) {
	t.Run("Players come back in seat order", func(t *testing.T) {
		// Given: players whose slice order differs from their seats
		players := []*entity.Player{
			entity.NewPlayer("c", 2, entity.PlayerSpec{Name: "Carol"}, 900),
			entity.NewPlayer("a", 0, entity.PlayerSpec{Name: "Alice"}, 1500),
			entity.NewPlayer("b", 1, entity.PlayerSpec{Name: "Bob"}, 0),
		}
		players[2].IsBankrupt = true

		// When: they are written to the hash and read back
		fields, err := encodePlayers(players)
		require.NoError(t, err)
		decoded, err := decodePlayers(asHash(t, fields))

		// Then: fields are keyed by seat and the slice is sorted by it
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"0", "1", "2"}, keys(fields))
		require.Len(t, decoded, 3)
		assert.Equal(t, "a", decoded[0].ID)
		assert.Equal(t, "b", decoded[1].ID)
		assert.True(t, decoded[1].IsBankrupt)
		assert.Equal(t, 900, decoded[2].Cash)
	})

	t.Run("Corrupt field fails", func(t *testing.T) {
		_, err := decodePlayers(map[string]string{"0": "{"})

		require.Error(t, err)
	})
}

func TestPropertyHash(t *testing.T) {
	t.Run("States come back in board order", func(t *testing.T) {
		properties := []*entity.PropertyState{
			{PropertyID: "boardwalk", OwnerID: "a", Houses: 5},
			{PropertyID: "mediterranean"},
			{PropertyID: "reading_rr", OwnerID: "b"},
		}

		fields, err := encodeProperties(properties)
		require.NoError(t, err)
		decoded, err := decodeProperties(asHash(t, fields))

		require.NoError(t, err)
		require.Len(t, decoded, 3)
		assert.Equal(t, "mediterranean", decoded[0].PropertyID)
		assert.Equal(t, "reading_rr", decoded[1].PropertyID)
		assert.Equal(t, "boardwalk", decoded[2].PropertyID)
		assert.True(t, decoded[2].HasHotel())
	})

	t.Run("Corrupt field names the property", func(t *testing.T) {
		_, err := decodeProperties(map[string]string{"boardwalk": "[]"})

		require.ErrorContains(t, err, "boardwalk")
	})
}

func keys(fields map[string]any) []string {
	out := make([]string, 0, len(fields))
	for key := range fields {
		out = append(out, key)
	}
	return out
}
