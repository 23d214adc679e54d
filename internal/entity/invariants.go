package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/board"
)

var ErrInvariantViolated = errors.New("game invariant violated")

// CheckInvariants - validates the structural rules every reachable game state obeys.
// A non-nil result means the engine has a defect, not that a caller misbehaved.
func (that *Game) CheckInvariants() error {
	checks := []func() error{
		that.checkPlayers,
		that.checkProperties,
		that.checkDecks,
		that.checkStatus,
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return fmt.Errorf("%w: game %s: %w", ErrInvariantViolated, that.ID, err)
		}
	}

	return nil
}

func (that *Game) checkPlayers() error {
	seen := make(map[int]bool, len(that.Players))
	for _, player := range that.Players {
		if player.Order < 0 || player.Order >= len(that.Players) || seen[player.Order] {
			return fmt.Errorf("player %s has invalid order %d", player.ID, player.Order)
		}
		seen[player.Order] = true

		if player.Position < 0 || player.Position >= board.Size {
			return fmt.Errorf("player %s is off the board at %d", player.ID, player.Position)
		}
		if player.JailTurns < 0 || player.JailTurns > 3 {
			return fmt.Errorf("player %s has %d jail turns", player.ID, player.JailTurns)
		}
		if player.Cash < 0 {
			return fmt.Errorf("player %s has negative cash %d", player.ID, player.Cash)
		}
		if player.GetOutOfJailCards < 0 {
			return fmt.Errorf("player %s holds %d jail cards", player.ID, player.GetOutOfJailCards)
		}
		if player.IsBankrupt && player.Cash != 0 {
			return fmt.Errorf("bankrupt player %s still holds cash", player.ID)
		}
	}

	return nil
}

func (that *Game) checkProperties() error {
	if len(that.Properties) != len(board.Properties()) {
		return fmt.Errorf("expected %d property states, got %d", len(board.Properties()), len(that.Properties))
	}

	groups := make(map[board.Color][]int)
	for _, state := range that.Properties {
		prop, ok := board.PropertyByID(state.PropertyID)
		if !ok {
			return fmt.Errorf("unknown property %q", state.PropertyID)
		}

		if state.Houses < 0 || state.Houses > board.HotelLevel {
			return fmt.Errorf("property %s has %d houses", state.PropertyID, state.Houses)
		}
		if state.Houses > 0 && (!state.IsOwned() || prop.Kind != board.KindStreet) {
			return fmt.Errorf("property %s has buildings but is unowned or not a street", state.PropertyID)
		}

		if state.IsOwned() {
			owner := that.Player(state.OwnerID)
			if owner == nil || owner.IsBankrupt {
				return fmt.Errorf("property %s is owned by unknown or bankrupt player %q", state.PropertyID, state.OwnerID)
			}
		}

		if prop.Kind == board.KindStreet {
			groups[prop.Color] = append(groups[prop.Color], state.Houses)
		}
	}

	for color, houses := range groups {
		lo, hi := houses[0], houses[0]
		for _, h := range houses[1:] {
			lo, hi = min(lo, h), max(hi, h)
		}
		if hi-lo > 1 {
			return fmt.Errorf("color group %s is built unevenly", color)
		}
	}

	if that.PendingPurchase != "" {
		state := that.Property(that.PendingPurchase)
		if state == nil || state.IsOwned() {
			return fmt.Errorf("pending purchase %q is not an unowned property", that.PendingPurchase)
		}
	}

	return nil
}

func (that *Game) checkDecks() error {
	for _, deck := range []*Deck{that.ChanceDeck, that.CommunityChestDeck} {
		if deck == nil || len(deck.Order) != board.DeckSize {
			return errors.New("deck is missing or has the wrong size")
		}
		if deck.Cursor < 0 || deck.Cursor >= len(deck.Order) {
			return fmt.Errorf("%s deck cursor %d out of range", deck.Type, deck.Cursor)
		}

		seen := make(map[int]bool, len(deck.Order))
		for _, idx := range deck.Order {
			if idx < 0 || idx >= board.DeckSize || seen[idx] {
				return fmt.Errorf("%s deck order is not a permutation", deck.Type)
			}
			seen[idx] = true
		}
	}

	return nil
}

func (that *Game) checkStatus() error {
	active := len(that.ActivePlayers())
	completed := that.IsCompleted()

	if completed != (that.WinnerID != "") || completed != (active <= 1) {
		return fmt.Errorf("status %s, winner %q and %d active players disagree", that.Status, that.WinnerID, active)
	}
	if winner := that.Player(that.WinnerID); completed && (winner == nil || winner.IsBankrupt) {
		return fmt.Errorf("winner %s is unknown or bankrupt", that.WinnerID)
	}

	if that.DoublesCount < 0 || that.DoublesCount > 2 {
		return fmt.Errorf("doubles count %d out of range", that.DoublesCount)
	}

	if that.IsInProgress() {
		current := that.CurrentPlayer()
		if current == nil || current.IsBankrupt {
			return errors.New("current player is missing or bankrupt")
		}
	}

	return nil
}
