package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// landing describes how the player arrived on a space.
type landing struct {
	// fromCard suppresses drawing another card.
	fromCard bool
	// boosted doubles railroad rent and charges utilities at ten times the roll.
	boosted bool
}

// resolveLanding - runs the decision-free consequences of standing on the current space.
// An unowned property is left as a pending purchase for the buy decision.
func (that *turn) resolveLanding(player *entity.Player, how landing) {
	if that.game.IsCompleted() || player.IsBankrupt {
		return
	}

	space := board.SpaceAt(player.Position)
	switch space.Type {
	case board.SpaceProperty:
		that.landOnProperty(player, space.PropertyID, how)
	case board.SpaceTax:
		if that.charge(player, space.Tax, nil) {
			that.emit(player.ID, entity.EventTaxPaid, map[string]any{"amount": space.Tax, "space": space.Name})
		}
	case board.SpaceChance:
		if !how.fromCard {
			that.drawCard(player, board.DeckChance)
		}
	case board.SpaceCommunityChest:
		if !how.fromCard {
			that.drawCard(player, board.DeckCommunityChest)
		}
	case board.SpaceGoToJail:
		that.sendToJail(player, "go_to_jail_space")
	case board.SpaceGo, board.SpaceJail, board.SpaceFreeParking:
	}
}

func (that *turn) landOnProperty(player *entity.Player, propertyID string, how landing) {
	state := that.game.Property(propertyID)
	if !state.IsOwned() {
		that.game.PendingPurchase = propertyID
		return
	}

	if state.OwnerID == player.ID {
		return
	}

	prop, _ := board.PropertyByID(propertyID)
	diceTotal := 0
	if that.game.LastDiceRoll != nil {
		diceTotal = that.game.LastDiceRoll.Total()
	}

	rent := Rent(that.game, propertyID, player.ID, diceTotal)
	if how.boosted {
		switch prop.Kind {
		case board.KindRailroad:
			rent *= 2
		case board.KindUtility:
			rent = diceTotal * utilityFullMultiplier
		case board.KindStreet:
		}
	}

	owner := that.game.Player(state.OwnerID)
	if that.charge(player, rent, owner) {
		that.emit(player.ID, entity.EventRentPaid, map[string]any{
			"property_id": propertyID,
			"owner_id":    owner.ID,
			"amount":      rent,
		})
	}
}
