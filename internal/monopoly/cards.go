package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// drawCard - draws the next card of a deck and executes it.
func (that *turn) drawCard(player *entity.Player, deckType board.DeckType) {
	idx := that.game.Deck(deckType).Draw()
	card := board.CardAt(deckType, idx)

	that.emit(player.ID, entity.EventCardDrawn, map[string]any{
		"deck":    string(deckType),
		"card_id": card.ID,
		"text":    card.Text,
	})

	that.executeCard(player, card)
}

func (that *turn) executeCard(player *entity.Player, card board.Card) {
	switch effect := card.Effect.(type) {
	case board.MoveTo:
		that.moveTo(player, effect.Position)
		that.resolveLanding(player, landing{fromCard: true})
	case board.MoveToNearest:
		that.moveTo(player, board.NearestOfKind(player.Position, effect.Kind))
		that.resolveLanding(player, landing{fromCard: true, boosted: true})
	case board.MoveRelative:
		that.moveBy(player, effect.Spaces)
		that.resolveLanding(player, landing{fromCard: true})
	case board.Collect:
		player.Cash += effect.Amount
		that.emit(player.ID, entity.EventPaymentReceived, map[string]any{"amount": effect.Amount, "from": "bank"})
	case board.Pay:
		that.payBank(player, effect.Amount, entity.EventPaymentMade)
	case board.PayPerBuilding:
		houses, hotels := buildingsOwnedBy(that.game, player.ID)
		that.payBank(player, houses*effect.PerHouse+hotels*effect.PerHotel, entity.EventPaymentMade)
	case board.CollectFromEachPlayer:
		that.collectFromEachPlayer(player, effect.Amount)
	case board.PayEachPlayer:
		that.payEachPlayer(player, effect.Amount)
	case board.GetOutOfJailFree:
		player.GetOutOfJailCards++
	case board.GoToJail:
		that.sendToJail(player, "card")
	}
}

func (that *turn) collectFromEachPlayer(player *entity.Player, amount int) {
	for _, other := range that.game.ActivePlayers() {
		if other.ID == player.ID {
			continue
		}

		if that.charge(other, amount, player) {
			that.emit(other.ID, entity.EventPaymentMade, map[string]any{"amount": amount, "to": player.ID})
			that.emit(player.ID, entity.EventPaymentReceived, map[string]any{"amount": amount, "from": other.ID})
		}

		if that.game.IsCompleted() {
			return
		}
	}
}

// payEachPlayer - the drawer owes the full total up front; if it can't be covered nobody is paid.
func (that *turn) payEachPlayer(player *entity.Player, amount int) {
	var others []*entity.Player
	for _, other := range that.game.ActivePlayers() {
		if other.ID != player.ID {
			others = append(others, other)
		}
	}

	if !that.charge(player, amount*len(others), nil) {
		return
	}

	for _, other := range others {
		other.Cash += amount
		that.emit(player.ID, entity.EventPaymentMade, map[string]any{"amount": amount, "to": other.ID})
		that.emit(other.ID, entity.EventPaymentReceived, map[string]any{"amount": amount, "from": player.ID})
	}
}

func buildingsOwnedBy(game *entity.Game, playerID string) (int, int) {
	houses, hotels := 0, 0
	for _, state := range game.PropertiesOwnedBy(playerID) {
		if state.HasHotel() {
			hotels++
		} else {
			houses += state.Houses
		}
	}

	return houses, hotels
}
