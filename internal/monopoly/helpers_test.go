package monopoly

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

var testTime = time.Unix(0, 0)

type scriptedDice struct {
	rolls []entity.DiceRoll
	next  int
}

func dice(pairs ...[2]int) *scriptedDice {
	out := &scriptedDice{}
	for _, pair := range pairs {
		out.rolls = append(out.rolls, entity.DiceRoll{Die1: pair[0], Die2: pair[1]})
	}
	return out
}

func (that *scriptedDice) Roll() entity.DiceRoll {
	if that.next >= len(that.rolls) {
		panic("scripted dice exhausted")
	}
	roll := that.rolls[that.next]
	that.next++
	return roll
}

type identityShuffler struct{}

func (identityShuffler) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newPlayers(count int) []*entity.Player {
	players := make([]*entity.Player, 0, count)
	for i := range count {
		players = append(players, entity.NewPlayer(fmt.Sprintf("p%d", i), i, entity.PlayerSpec{Name: fmt.Sprintf("Player %d", i)}, 1500))
	}
	return players
}

// newWaitingGame - a game with decks in printed order so tests can pick cards by cursor.
func newWaitingGame(t *testing.T, playerCount int) *entity.Game {
	t.Helper()

	game, _, err := NewGame("g1", newPlayers(playerCount), identityShuffler{}, testTime)
	require.NoError(t, err)

	return game
}

func start(t *testing.T, game *entity.Game, d Dice) *Controller {
	t.Helper()

	ctrl := NewController(d)
	_, err := ctrl.Start(game)
	require.NoError(t, err)

	return ctrl
}

func newStartedGame(t *testing.T, playerCount int, d Dice) (*entity.Game, *Controller) {
	t.Helper()

	game := newWaitingGame(t, playerCount)
	return game, start(t, game, d)
}

func apply(t *testing.T, ctrl *Controller, game *entity.Game, actionType entity.ActionType, propertyID ...string) []entity.Event {
	t.Helper()

	action := entity.Action{Type: actionType}
	if len(propertyID) > 0 {
		action.PropertyID = propertyID[0]
	}

	events, err := ctrl.Apply(game, game.CurrentPlayer().ID, action)
	require.NoError(t, err)

	return events
}

func own(game *entity.Game, playerID string, houses int, propertyIDs ...string) {
	for _, id := range propertyIDs {
		state := game.Property(id)
		state.OwnerID = playerID
		state.Houses = houses
	}
}

func eventTypes(events []entity.Event) []entity.EventType {
	out := make([]entity.EventType, 0, len(events))
	for _, event := range events {
		out = append(out, event.Type)
	}
	return out
}

func legalTypes(game *entity.Game) []entity.ActionType {
	var out []entity.ActionType
	for _, action := range LegalActions(game).Actions {
		out = append(out, action.Type)
	}
	return out
}
