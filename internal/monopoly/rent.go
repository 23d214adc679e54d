package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	railroadBaseRent      = 25
	utilityMultiplier     = 4
	utilityFullMultiplier = 10
)

// Rent - returns what an occupant owes on landing on a property with the given dice total.
// Unowned properties and properties owned by the occupant charge nothing.
func Rent(game *entity.Game, propertyID, occupantID string, diceTotal int) int {
	prop, ok := board.PropertyByID(propertyID)
	state := game.Property(propertyID)
	if !ok || state == nil || !state.IsOwned() || state.OwnerID == occupantID {
		return 0
	}

	switch prop.Kind {
	case board.KindStreet:
		if state.Houses > 0 {
			return prop.Rent[state.Houses]
		}
		if OwnsColorGroup(game, state.OwnerID, prop.Color) {
			return 2 * prop.Rent[0]
		}
		return prop.Rent[0]
	case board.KindRailroad:
		return RailroadRent(ownedOfKind(game, state.OwnerID, board.KindRailroad))
	case board.KindUtility:
		if ownedOfKind(game, state.OwnerID, board.KindUtility) == 2 {
			return diceTotal * utilityFullMultiplier
		}
		return diceTotal * utilityMultiplier
	}

	return 0
}

// RailroadRent - returns 25, 50, 100 or 200 for one to four railroads owned.
func RailroadRent(owned int) int {
	if owned <= 0 {
		return 0
	}

	return railroadBaseRent << (owned - 1)
}

// OwnsColorGroup - reports whether the player owns every street of a color.
func OwnsColorGroup(game *entity.Game, playerID string, color board.Color) bool {
	for _, id := range board.ColorGroup(color) {
		if game.Property(id).OwnerID != playerID {
			return false
		}
	}

	return true
}

func ownedOfKind(game *entity.Game, playerID string, kind board.PropertyKind) int {
	count := 0
	for _, id := range board.IDsOfKind(kind) {
		if game.Property(id).OwnerID == playerID {
			count++
		}
	}

	return count
}
