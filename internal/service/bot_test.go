package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always answers its own value modulo n.
type fixedRandom int

func (that fixedRandom) Intn(n int) int {
	return int(that) % n
}

func newGameInPhase(t *testing.T, phase entity.Phase) *entity.Game {
	t.Helper()

	players := make([]*entity.Player, 0, 2)
	for i := range 2 {
		players = append(players, entity.NewPlayer(fmt.Sprintf("p%d", i), i, entity.PlayerSpec{Name: "bot"}, 1500))
	}

	game, _, err := monopoly.NewGame("g1", players, monopoly.NewRandomDice(1), time.Unix(0, 0))
	require.NoError(t, err)

	game.Status = entity.StatusInProgress
	game.TurnNumber = 1
	game.Phase = phase

	return game
}

func TestBotService_ChooseAction(t *testing.T) {
	t.Run("Buys an affordable property", func(t *testing.T) {
		// Given: the bot landed on an unowned Boardwalk
		game := newGameInPhase(t, entity.PhaseAwaitingBuyDecision)
		game.PendingPurchase = "boardwalk"

		// When: the bot decides
		action, err := NewBotService(fixedRandom(1)).ChooseAction(game)

		// Then: it buys
		require.NoError(t, err)
		assert.Equal(t, entity.Action{Type: entity.ActionBuyProperty, PropertyID: "boardwalk"}, action)
	})

	t.Run("Passes when it can't afford the property", func(t *testing.T) {
		game := newGameInPhase(t, entity.PhaseAwaitingBuyDecision)
		game.PendingPurchase = "boardwalk"
		game.Players[0].Cash = 100

		action, err := NewBotService(fixedRandom(1)).ChooseAction(game)

		require.NoError(t, err)
		assert.Equal(t, entity.ActionPassProperty, action.Type)
	})

	t.Run("Jail decisions depend on cards and cash", func(t *testing.T) {
		tests := []struct {
			name     string
			cards    int
			cash     int
			expected entity.ActionType
		}{
			{name: "card held", cards: 1, cash: 1500, expected: entity.ActionUseJailCard},
			{name: "rich", cash: 1500, expected: entity.ActionPayJailFine},
			{name: "poor", cash: 200, expected: entity.ActionRollForDoubles},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: the bot sits in jail
				game := newGameInPhase(t, entity.PhaseAwaitingJailDecision)
				player := game.Players[0]
				player.InJail = true
				player.Position = 10
				player.GetOutOfJailCards = tt.cards
				player.Cash = tt.cash

				// When: the bot decides
				action, err := NewBotService(fixedRandom(0)).ChooseAction(game)

				// Then: the expected way out is taken
				require.NoError(t, err)
				assert.Equal(t, tt.expected, action.Type)
			})
		}
	})

	t.Run("Builds or ends the turn on a coin flip", func(t *testing.T) {
		// Given: the bot owns the whole brown group after rolling
		game := newGameInPhase(t, entity.PhasePostRoll)
		game.LastDiceRoll = &entity.DiceRoll{Die1: 1, Die2: 2}
		for _, id := range []string{"mediterranean", "baltic"} {
			game.Property(id).OwnerID = "p0"
		}

		// When: the coin lands on build
		built, err := NewBotService(fixedRandom(0)).ChooseAction(game)
		require.NoError(t, err)

		// When: the coin lands on end
		ended, err := NewBotService(fixedRandom(1)).ChooseAction(game)
		require.NoError(t, err)

		// Then: both choices are legal
		assert.Equal(t, entity.Action{Type: entity.ActionBuildHouse, PropertyID: "mediterranean"}, built)
		assert.Equal(t, entity.ActionEndTurn, ended.Type)
		assert.True(t, monopoly.IsLegal(game, built))
		assert.True(t, monopoly.IsLegal(game, ended))
	})

	t.Run("Waiting game has no moves", func(t *testing.T) {
		game := newGameInPhase(t, "")
		game.Status = entity.StatusWaiting

		_, err := NewBotService(fixedRandom(0)).ChooseAction(game)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestBotService_FallbackAction(t *testing.T) {
	t.Run("Declines a pending purchase", func(t *testing.T) {
		// Given: the player could afford Boardwalk
		game := newGameInPhase(t, entity.PhaseAwaitingBuyDecision)
		game.PendingPurchase = "boardwalk"

		// When: the player ran out of time
		action, err := NewBotService(fixedRandom(0)).FallbackAction(game)

		// Then: the property is passed, never bought
		require.NoError(t, err)
		assert.Equal(t, entity.Action{Type: entity.ActionPassProperty, PropertyID: "boardwalk"}, action)
		assert.True(t, monopoly.IsLegal(game, action))
	})

	t.Run("Ends the turn instead of building", func(t *testing.T) {
		game := newGameInPhase(t, entity.PhasePostRoll)
		game.LastDiceRoll = &entity.DiceRoll{Die1: 1, Die2: 2}
		for _, id := range []string{"mediterranean", "baltic"} {
			game.Property(id).OwnerID = "p0"
		}

		action, err := NewBotService(fixedRandom(0)).FallbackAction(game)

		require.NoError(t, err)
		assert.Equal(t, entity.ActionEndTurn, action.Type)
	})

	t.Run("Rolls when the turn starts", func(t *testing.T) {
		action, err := NewBotService(fixedRandom(0)).FallbackAction(newGameInPhase(t, entity.PhaseAwaitingRoll))

		require.NoError(t, err)
		assert.Equal(t, entity.ActionRollDice, action.Type)
	})

	t.Run("Completed game has no moves", func(t *testing.T) {
		game := newGameInPhase(t, entity.PhaseCompleted)
		game.Status = entity.StatusCompleted

		_, err := NewBotService(fixedRandom(0)).FallbackAction(game)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestDefaultAction(t *testing.T) {
	legal := func(types ...entity.ActionType) []entity.LegalAction {
		out := make([]entity.LegalAction, 0, len(types))
		for _, actionType := range types {
			out = append(out, entity.LegalAction{Type: actionType})
		}
		return out
	}

	tests := []struct {
		name     string
		actions  []entity.LegalAction
		expected entity.ActionType
	}{
		{
			name:     "end turn wins over building",
			actions:  legal(entity.ActionBuildHouse, entity.ActionEndTurn),
			expected: entity.ActionEndTurn,
		},
		{
			name:     "pass wins over buy",
			actions:  legal(entity.ActionBuyProperty, entity.ActionPassProperty),
			expected: entity.ActionPassProperty,
		},
		{
			name:     "roll",
			actions:  legal(entity.ActionRollDice),
			expected: entity.ActionRollDice,
		},
		{
			name:     "fine wins over rolling for doubles",
			actions:  legal(entity.ActionRollForDoubles, entity.ActionPayJailFine),
			expected: entity.ActionPayJailFine,
		},
		{
			name:     "first listed otherwise",
			actions:  legal(entity.ActionUseJailCard, entity.ActionRollForDoubles),
			expected: entity.ActionUseJailCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := DefaultAction(tt.actions)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, action.Type)
		})
	}

	t.Run("Nothing to choose from", func(t *testing.T) {
		_, err := DefaultAction(nil)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
