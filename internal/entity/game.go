package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
)

const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Phase string

const (
	PhasePreRoll              Phase = "pre_roll"
	PhaseAwaitingJailDecision Phase = "awaiting_jail_decision"
	PhaseAwaitingRoll         Phase = "awaiting_roll"
	PhaseAwaitingBuyDecision  Phase = "awaiting_buy_decision"
	PhasePostRoll             Phase = "post_roll"
	PhaseCompleted            Phase = "completed"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type DiceRoll struct {
	Die1 int `json:"die1"`
	Die2 int `json:"die2"`
}

func (that DiceRoll) Total() int {
	return that.Die1 + that.Die2
}

func (that DiceRoll) IsDoubles() bool {
	return that.Die1 == that.Die2
}

type Game struct {
	ID                 string           `json:"id"`
	Status             string           `json:"status"`
	Phase              Phase            `json:"phase,omitempty"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	TurnNumber         int              `json:"turn_number"`
	DoublesCount       int              `json:"doubles_count"`
	LastDiceRoll       *DiceRoll        `json:"last_dice_roll,omitempty"`
	PendingPurchase    string           `json:"pending_purchase,omitempty"`
	WinnerID           string           `json:"winner_id,omitempty"`
	Players            []*Player        `json:"players"`
	Properties         []*PropertyState `json:"properties"`
	ChanceDeck         *Deck            `json:"chance_deck"`
	CommunityChestDeck *Deck            `json:"community_chest_deck"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewGame - builds a waiting game with every property unowned.
func NewGame(id string, players []*Player, chance, communityChest *Deck, now time.Time) *Game {
	props := board.Properties()
	states := make([]*PropertyState, 0, len(props))
	for _, prop := range props {
		states = append(states, &PropertyState{PropertyID: prop.ID})
	}

	return &Game{
		ID:                 id,
		Status:             StatusWaiting,
		Players:            players,
		Properties:         states,
		ChanceDeck:         chance,
		CommunityChestDeck: communityChest,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (that *Game) IsCompleted() bool {
	return that.Status == StatusCompleted
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// ConfirmInProgress - returns an IllegalStateTransition error unless the game accepts actions.
func (that *Game) ConfirmInProgress() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsCompleted():
		return apperror.ErrGameFinished
	case that.IsInProgress():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// CurrentPlayer - returns the player expected to act, nil if the index is out of range.
func (that *Game) CurrentPlayer() *Player {
	if that.CurrentPlayerIndex < 0 || that.CurrentPlayerIndex >= len(that.Players) {
		return nil
	}

	return that.Players[that.CurrentPlayerIndex]
}

func (that *Game) Player(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

func (that *Game) Property(id string) *PropertyState {
	for _, state := range that.Properties {
		if state.PropertyID == id {
			return state
		}
	}

	return nil
}

// PropertiesOwnedBy - returns the property states owned by a player in board order.
func (that *Game) PropertiesOwnedBy(playerID string) []*PropertyState {
	var owned []*PropertyState
	for _, state := range that.Properties {
		if state.OwnerID == playerID {
			owned = append(owned, state)
		}
	}

	return owned
}

func (that *Game) ActivePlayers() []*Player {
	var active []*Player
	for _, player := range that.Players {
		if player.IsActive() {
			active = append(active, player)
		}
	}

	return active
}

// NextActiveIndex - returns the index of the next non-bankrupt player after the current one, wrapping.
// Returns the current index when nobody else is active.
func (that *Game) NextActiveIndex() int {
	count := len(that.Players)
	for step := 1; step <= count; step++ {
		idx := (that.CurrentPlayerIndex + step) % count
		if that.Players[idx].IsActive() {
			return idx
		}
	}

	return that.CurrentPlayerIndex
}

func (that *Game) Deck(deckType board.DeckType) *Deck {
	if deckType == board.DeckChance {
		return that.ChanceDeck
	}

	return that.CommunityChestDeck
}

// Clone - returns a deep copy that shares nothing mutable with the receiver.
func (that *Game) Clone() *Game {
	out := *that

	if that.LastDiceRoll != nil {
		roll := *that.LastDiceRoll
		out.LastDiceRoll = &roll
	}

	out.Players = make([]*Player, len(that.Players))
	for i, player := range that.Players {
		p := *player
		out.Players[i] = &p
	}

	out.Properties = make([]*PropertyState, len(that.Properties))
	for i, state := range that.Properties {
		s := *state
		out.Properties[i] = &s
	}

	out.ChanceDeck = that.ChanceDeck.Clone()
	out.CommunityChestDeck = that.CommunityChestDeck.Clone()

	return &out
}
