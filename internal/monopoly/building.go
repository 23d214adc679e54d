package monopoly

import (
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const maxHouses = 4

var (
	ErrNotAStreet           = fmt.Errorf("%w: only streets can be built on", apperror.ErrInvalidAction)
	ErrNotOwner             = fmt.Errorf("%w: property is not owned by the player", apperror.ErrInvalidAction)
	ErrIncompleteColorGroup = fmt.Errorf("%w: player does not own the whole color group", apperror.ErrInvalidAction)
	ErrTooManyHouses        = fmt.Errorf("%w: property already has four houses", apperror.ErrInvalidAction)
	ErrHotelNeedsFourHouses = fmt.Errorf("%w: a hotel needs exactly four houses", apperror.ErrInvalidAction)
	ErrUnevenBuilding       = fmt.Errorf("%w: build evenly across the color group", apperror.ErrInvalidAction)
)

// CanBuildHouse - returns nil when the player may put one more house on the street.
func CanBuildHouse(game *entity.Game, playerID, propertyID string) error {
	prop, state, err := buildTarget(game, playerID, propertyID)
	if err != nil {
		return err
	}

	if state.Houses >= maxHouses {
		return ErrTooManyHouses
	}
	if state.Houses > minGroupHouses(game, prop.Color) {
		return ErrUnevenBuilding
	}

	return canAfford(game.Player(playerID), prop.HouseCost, "house on "+prop.Name)
}

// CanBuildHotel - returns nil when the player may replace four houses with a hotel.
// Every street of the group must already carry four houses or a hotel.
func CanBuildHotel(game *entity.Game, playerID, propertyID string) error {
	prop, state, err := buildTarget(game, playerID, propertyID)
	if err != nil {
		return err
	}

	if state.Houses != maxHouses {
		return ErrHotelNeedsFourHouses
	}
	if minGroupHouses(game, prop.Color) < maxHouses {
		return ErrUnevenBuilding
	}

	return canAfford(game.Player(playerID), prop.HouseCost, "hotel on "+prop.Name)
}

func buildTarget(game *entity.Game, playerID, propertyID string) (board.Property, *entity.PropertyState, error) {
	prop, ok := board.PropertyByID(propertyID)
	state := game.Property(propertyID)
	if !ok || state == nil {
		return board.Property{}, nil, fmt.Errorf("%w: unknown property %q", apperror.ErrInvalidAction, propertyID)
	}

	if prop.Kind != board.KindStreet {
		return prop, state, ErrNotAStreet
	}
	if state.OwnerID != playerID {
		return prop, state, ErrNotOwner
	}
	if !OwnsColorGroup(game, playerID, prop.Color) {
		return prop, state, ErrIncompleteColorGroup
	}

	return prop, state, nil
}

func minGroupHouses(game *entity.Game, color board.Color) int {
	lowest := board.HotelLevel
	for _, id := range board.ColorGroup(color) {
		lowest = min(lowest, game.Property(id).Houses)
	}

	return lowest
}

func canAfford(player *entity.Player, cost int, what string) error {
	if player.Cash < cost {
		return fmt.Errorf("%w: %s costs $%d, player has $%d", apperror.ErrInsufficientFunds, what, cost, player.Cash)
	}

	return nil
}

func (that *turn) buildHouse(player *entity.Player, propertyID string) {
	prop, _ := board.PropertyByID(propertyID)
	state := that.game.Property(propertyID)

	player.Cash -= prop.HouseCost
	state.Houses++

	that.emit(player.ID, entity.EventHouseBuilt, map[string]any{
		"property_id": propertyID,
		"houses":      state.Houses,
		"cost":        prop.HouseCost,
	})
}

func (that *turn) buildHotel(player *entity.Player, propertyID string) {
	prop, _ := board.PropertyByID(propertyID)
	state := that.game.Property(propertyID)

	player.Cash -= prop.HouseCost
	state.Houses = board.HotelLevel

	that.emit(player.ID, entity.EventHotelBuilt, map[string]any{
		"property_id": propertyID,
		"cost":        prop.HouseCost,
	})
}
