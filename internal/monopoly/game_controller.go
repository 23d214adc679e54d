// Package monopoly is the rules engine and turn state machine. It never performs I/O:
// every operation mutates the game it is handed and returns the events it produced.
// Callers serialize access per game.
package monopoly

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

var ErrNoJailCard = fmt.Errorf("%w: player holds no get out of jail free card", apperror.ErrInvalidAction)

// NewGame - seats the players in the given order and shuffles both decks once.
func NewGame(id string, players []*entity.Player, shuffler Shuffler, now time.Time) (*entity.Game, []entity.Event, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, nil, fmt.Errorf("%w: got %d players, need %d to %d", apperror.ErrInvalidPlayers, len(players), MinPlayers, MaxPlayers)
	}

	for i, player := range players {
		player.Order = i
	}

	game := entity.NewGame(
		id,
		players,
		entity.NewDeck(board.DeckChance, shuffler.Perm(board.DeckSize)),
		entity.NewDeck(board.DeckCommunityChest, shuffler.Perm(board.DeckSize)),
		now,
	)

	t := &turn{game: game}
	t.emit("", entity.EventGameCreated, map[string]any{"players": len(players)})

	return game, t.events, nil
}

// Controller applies actions to games using one source of dice.
type Controller struct {
	dice Dice
	now  func() time.Time
}

func NewController(dice Dice) *Controller {
	return &Controller{dice: dice, now: time.Now}
}

// turn carries the state of one action application.
type turn struct {
	game   *entity.Game
	dice   Dice
	events []entity.Event
}

func (that *turn) emit(playerID string, eventType entity.EventType, payload map[string]any) {
	that.events = append(that.events, entity.Event{
		GameID:     that.game.ID,
		TurnNumber: that.game.TurnNumber,
		PlayerID:   playerID,
		Type:       eventType,
		Payload:    payload,
	})
}

// Start - moves a waiting game into play with the first seat to act.
func (that *Controller) Start(game *entity.Game) ([]entity.Event, error) {
	switch {
	case game.IsCompleted():
		return nil, apperror.ErrGameFinished
	case !game.IsWaiting():
		return nil, apperror.ErrGameStarted
	}

	t := &turn{game: game, dice: that.dice}

	game.Status = entity.StatusInProgress
	game.CurrentPlayerIndex = 0
	game.TurnNumber = 1
	t.emit("", entity.EventGameStarted, map[string]any{"players": len(game.Players)})
	t.startTurn()

	that.settle(t)

	return t.events, nil
}

// Apply - validates the action against the current phase and applies it. A rejected action
// leaves the game untouched.
func (that *Controller) Apply(game *entity.Game, playerID string, action entity.Action) ([]entity.Event, error) {
	if err := game.ConfirmInProgress(); err != nil {
		return nil, fmt.Errorf("action %s rejected: %w", action.Type, err)
	}

	player := game.CurrentPlayer()
	if player.ID != playerID {
		return nil, fmt.Errorf("action %s rejected in phase %s: %w", action.Type, game.Phase, apperror.ErrNotYourTurn)
	}

	if err := validate(game, action); err != nil {
		return nil, fmt.Errorf("action %s rejected in phase %s: %w", action.Type, game.Phase, err)
	}

	t := &turn{game: game, dice: that.dice}

	switch action.Type {
	case entity.ActionRollDice:
		t.roll(player)
	case entity.ActionBuyProperty:
		t.buy(player)
	case entity.ActionPassProperty:
		t.pass(player)
	case entity.ActionBuildHouse:
		t.buildHouse(player, action.PropertyID)
	case entity.ActionBuildHotel:
		t.buildHotel(player, action.PropertyID)
	case entity.ActionPayJailFine:
		t.payJailFine(player)
	case entity.ActionUseJailCard:
		t.useJailCard(player)
	case entity.ActionRollForDoubles:
		t.rollForDoubles(player)
	case entity.ActionEndTurn:
		t.endTurn()
	}

	that.settle(t)

	return t.events, nil
}

// settle - hands the turn on if the acting player went bankrupt, derives the next phase
// and verifies the result. A violated invariant is a defect and panics.
func (that *Controller) settle(t *turn) {
	game := t.game

	if game.IsInProgress() && game.CurrentPlayer().IsBankrupt {
		t.endTurn()
	}

	game.Phase = transition(game)
	for _, player := range game.Players {
		player.NetWorth = NetWorth(game, player.ID)
	}
	game.UpdatedAt = that.now()

	if err := game.CheckInvariants(); err != nil {
		panic(err)
	}
}

// transition - the single source of the phase a game is in, derived from its state.
func transition(game *entity.Game) entity.Phase {
	switch {
	case game.IsCompleted():
		return entity.PhaseCompleted
	case !game.IsInProgress():
		return ""
	case game.PendingPurchase != "":
		return entity.PhaseAwaitingBuyDecision
	}

	player := game.CurrentPlayer()
	if game.LastDiceRoll == nil {
		if player.InJail {
			return entity.PhaseAwaitingJailDecision
		}
		return entity.PhaseAwaitingRoll
	}

	if game.LastDiceRoll.IsDoubles() && game.DoublesCount > 0 && !player.InJail {
		return entity.PhaseAwaitingRoll
	}

	return entity.PhasePostRoll
}

// startTurn - enters pre_roll for the current player and resolves it straight away.
// A player out of doubles attempts pays the fine here.
func (that *turn) startTurn() {
	game := that.game
	game.Phase = entity.PhasePreRoll
	game.DoublesCount = 0
	game.LastDiceRoll = nil
	game.PendingPurchase = ""

	player := game.CurrentPlayer()
	that.emit(player.ID, entity.EventTurnStarted, map[string]any{"order": player.Order})

	if player.InJail && player.JailTurns >= MaxJailTurns && !that.forceJailFine(player) {
		if game.IsInProgress() {
			that.endTurn()
		}
		return
	}

	game.Phase = transition(game)
}

// endTurn - hands the turn to the next non-bankrupt player.
func (that *turn) endTurn() {
	game := that.game
	that.emit(game.CurrentPlayer().ID, entity.EventTurnEnded, nil)

	game.CurrentPlayerIndex = game.NextActiveIndex()
	game.TurnNumber++
	that.startTurn()
}

func (that *turn) rollDice(player *entity.Player) entity.DiceRoll {
	roll := that.dice.Roll()
	that.game.LastDiceRoll = &roll

	that.emit(player.ID, entity.EventDiceRolled, map[string]any{
		"die1":    roll.Die1,
		"die2":    roll.Die2,
		"total":   roll.Total(),
		"doubles": roll.IsDoubles(),
		"in_jail": player.InJail,
	})

	return roll
}

// roll - the regular roll. A third doubles in a row goes straight to jail without moving.
func (that *turn) roll(player *entity.Player) {
	roll := that.rollDice(player)

	if roll.IsDoubles() {
		that.game.DoublesCount++
		if that.game.DoublesCount == 3 {
			that.game.DoublesCount = 0
			that.sendToJail(player, "three_doubles")
			return
		}
	}

	that.moveBy(player, roll.Total())
	that.resolveLanding(player, landing{})
}

func (that *turn) buy(player *entity.Player) {
	id := that.game.PendingPurchase
	prop, _ := board.PropertyByID(id)

	player.Cash -= prop.Price
	that.game.Property(id).OwnerID = player.ID
	that.game.PendingPurchase = ""

	that.emit(player.ID, entity.EventPropertyPurchased, map[string]any{"property_id": id, "price": prop.Price})
}

func (that *turn) pass(player *entity.Player) {
	id := that.game.PendingPurchase
	that.game.PendingPurchase = ""

	that.emit(player.ID, entity.EventPropertyPassed, map[string]any{"property_id": id})
}
