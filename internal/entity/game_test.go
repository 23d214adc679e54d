package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityOrder() []int {
	order := make([]int, board.DeckSize)
	for i := range order {
		order[i] = i
	}
	return order
}

func newTestGame(playerCount int) *Game {
	players := make([]*Player, 0, playerCount)
	for i := range playerCount {
		players = append(players, NewPlayer(string(rune('a'+i)), i, PlayerSpec{Name: "p"}, 1500))
	}

	return NewGame(
		"game-1",
		players,
		NewDeck(board.DeckChance, identityOrder()),
		NewDeck(board.DeckCommunityChest, identityOrder()),
		time.Unix(0, 0),
	)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsCompleted returns true when game status is completed", func(t *testing.T) {
		// Given: a game with StatusCompleted
		game := &Game{Status: StatusCompleted}

		// Then: it should be completed and nothing else
		assert.True(t, game.IsCompleted())
		assert.False(t, game.IsInProgress())
		assert.False(t, game.IsWaiting())
	})

	t.Run("IsInProgress returns true when game status is in_progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.True(t, game.IsInProgress())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmInProgress(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.NoError(t, game.ConfirmInProgress())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game accepts actions
		err := game.ConfirmInProgress()

		// Then: it should be an illegal state transition
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.ErrorIs(t, err, apperror.ErrIllegalStateTransition)
	})

	t.Run("Returns ErrGameFinished when game is completed", func(t *testing.T) {
		game := &Game{Status: StatusCompleted}

		err := game.ConfirmInProgress()

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.ErrorIs(t, err, apperror.ErrIllegalStateTransition)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmInProgress()

		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestNewGame(t *testing.T) {
	// Given: a new game with three players
	game := newTestGame(3)

	// Then: it is waiting, holds every property unowned and satisfies the invariants
	assert.Equal(t, StatusWaiting, game.Status)
	assert.Len(t, game.Properties, 28)
	for _, state := range game.Properties {
		assert.False(t, state.IsOwned())
		assert.Zero(t, state.Houses)
	}
	assert.NoError(t, game.CheckInvariants())
}

func TestGame_NextActiveIndex(t *testing.T) {
	t.Run("Skips bankrupt players and wraps", func(t *testing.T) {
		// Given: four players where the second and fourth are bankrupt
		game := newTestGame(4)
		game.Players[1].IsBankrupt = true
		game.Players[3].IsBankrupt = true
		game.CurrentPlayerIndex = 2

		// When: asking for the next player
		next := game.NextActiveIndex()

		// Then: rotation wraps past the bankrupt seat to the first player
		assert.Equal(t, 0, next)
	})

	t.Run("Returns current index when nobody else is active", func(t *testing.T) {
		game := newTestGame(2)
		game.Players[1].IsBankrupt = true

		assert.Equal(t, 0, game.NextActiveIndex())
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a roll, an owner and a drawn card
	game := newTestGame(2)
	game.LastDiceRoll = &DiceRoll{Die1: 3, Die2: 4}
	game.Property("boardwalk").OwnerID = "a"
	game.ChanceDeck.Draw()

	// When: mutating the clone
	clone := game.Clone()
	clone.Players[0].Cash = 1
	clone.Property("boardwalk").OwnerID = ""
	clone.LastDiceRoll.Die1 = 6
	clone.ChanceDeck.Order[0] = 15
	clone.ChanceDeck.Draw()

	// Then: the original is untouched
	assert.Equal(t, 1500, game.Players[0].Cash)
	assert.Equal(t, "a", game.Property("boardwalk").OwnerID)
	assert.Equal(t, 3, game.LastDiceRoll.Die1)
	assert.Equal(t, 0, game.ChanceDeck.Order[0])
	assert.Equal(t, 1, game.ChanceDeck.Cursor)
}

func TestDeck_Draw(t *testing.T) {
	// Given: a deck with the cursor on the last card
	deck := NewDeck(board.DeckChance, identityOrder())
	deck.Cursor = board.DeckSize - 1

	// When: drawing twice
	last := deck.Draw()
	first := deck.Draw()

	// Then: the cursor wraps back to the start
	assert.Equal(t, board.DeckSize-1, last)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, deck.Cursor)
}

func TestGame_CheckInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(game *Game)
	}{
		{"duplicate order", func(game *Game) { game.Players[1].Order = 0 }},
		{"position off the board", func(game *Game) { game.Players[0].Position = 40 }},
		{"too many jail turns", func(game *Game) { game.Players[0].JailTurns = 4 }},
		{"houses on an unowned street", func(game *Game) { game.Property("baltic").Houses = 1 }},
		{"houses on a railroad", func(game *Game) {
			game.Property("reading_rr").OwnerID = "a"
			game.Property("reading_rr").Houses = 1
		}},
		{"owner is bankrupt", func(game *Game) {
			game.Players[1].IsBankrupt = true
			game.Players[1].Cash = 0
			game.Players[2].IsBankrupt = true
			game.Players[2].Cash = 0
			game.Status = StatusCompleted
			game.WinnerID = "a"
			game.Property("baltic").OwnerID = "b"
		}},
		{"uneven building", func(game *Game) {
			game.Property("mediterranean").OwnerID = "a"
			game.Property("baltic").OwnerID = "a"
			game.Property("mediterranean").Houses = 2
		}},
		{"completed without winner", func(game *Game) { game.Status = StatusCompleted }},
		{"winner while in progress", func(game *Game) {
			game.Status = StatusInProgress
			game.WinnerID = "a"
		}},
		{"deck cursor out of range", func(game *Game) { game.ChanceDeck.Cursor = board.DeckSize }},
		{"deck is not a permutation", func(game *Game) { game.CommunityChestDeck.Order[0] = 1 }},
		{"current player bankrupt", func(game *Game) {
			game.Status = StatusInProgress
			game.Players[0].IsBankrupt = true
			game.Players[0].Cash = 0
		}},
		{"pending purchase already owned", func(game *Game) {
			game.Property("baltic").OwnerID = "b"
			game.PendingPurchase = "baltic"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a valid three player game
			game := newTestGame(3)
			require.NoError(t, game.CheckInvariants())

			// When: corrupting it
			tt.mutate(game)

			// Then: the violation is reported
			assert.ErrorIs(t, game.CheckInvariants(), ErrInvariantViolated)
		})
	}
}
