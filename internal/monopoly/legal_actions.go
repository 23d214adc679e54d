package monopoly

import (
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// LegalActions - lists what the current player may do right now. Every listed action passes
// the same validation Apply runs.
func LegalActions(game *entity.Game) *entity.LegalActions {
	out := &entity.LegalActions{
		GameID:  game.ID,
		Phase:   game.Phase,
		Actions: []entity.LegalAction{},
	}

	if !game.IsInProgress() {
		return out
	}

	out.PlayerID = game.CurrentPlayer().ID
	for _, action := range candidates(game) {
		if validate(game, action) == nil {
			out.Actions = append(out.Actions, describe(action, game))
		}
	}

	return out
}

// IsLegal - reports whether the current player may submit the action.
func IsLegal(game *entity.Game, action entity.Action) bool {
	return game.IsInProgress() && validate(game, action) == nil
}

// candidates - every action the phase could ever offer, before state-based filtering.
func candidates(game *entity.Game) []entity.Action {
	switch game.Phase {
	case entity.PhaseAwaitingJailDecision:
		return []entity.Action{
			{Type: entity.ActionPayJailFine},
			{Type: entity.ActionUseJailCard},
			{Type: entity.ActionRollForDoubles},
		}
	case entity.PhaseAwaitingRoll:
		return []entity.Action{{Type: entity.ActionRollDice}}
	case entity.PhaseAwaitingBuyDecision:
		return []entity.Action{
			{Type: entity.ActionBuyProperty, PropertyID: game.PendingPurchase},
			{Type: entity.ActionPassProperty, PropertyID: game.PendingPurchase},
		}
	case entity.PhasePostRoll:
		var actions []entity.Action
		for _, state := range game.PropertiesOwnedBy(game.CurrentPlayer().ID) {
			actions = append(actions,
				entity.Action{Type: entity.ActionBuildHouse, PropertyID: state.PropertyID},
				entity.Action{Type: entity.ActionBuildHotel, PropertyID: state.PropertyID},
			)
		}
		return append(actions, entity.Action{Type: entity.ActionEndTurn})
	case entity.PhasePreRoll, entity.PhaseCompleted:
	}

	return nil
}

// validate - checks an action for the current player against the phase and the game state.
func validate(game *entity.Game, action entity.Action) error {
	player := game.CurrentPlayer()

	switch game.Phase {
	case entity.PhaseAwaitingJailDecision:
		switch action.Type {
		case entity.ActionPayJailFine:
			return canAfford(player, JailFine, "jail fine")
		case entity.ActionUseJailCard:
			if player.GetOutOfJailCards == 0 {
				return ErrNoJailCard
			}
			return nil
		case entity.ActionRollForDoubles:
			return nil
		}
	case entity.PhaseAwaitingRoll:
		if action.Type == entity.ActionRollDice {
			return nil
		}
	case entity.PhaseAwaitingBuyDecision:
		if action.PropertyID != "" && action.PropertyID != game.PendingPurchase {
			return fmt.Errorf("%w: the pending purchase is %s, not %s", apperror.ErrInvalidAction, game.PendingPurchase, action.PropertyID)
		}
		switch action.Type {
		case entity.ActionBuyProperty:
			prop, _ := board.PropertyByID(game.PendingPurchase)
			return canAfford(player, prop.Price, prop.Name)
		case entity.ActionPassProperty:
			return nil
		}
	case entity.PhasePostRoll:
		switch action.Type {
		case entity.ActionBuildHouse:
			return CanBuildHouse(game, player.ID, action.PropertyID)
		case entity.ActionBuildHotel:
			return CanBuildHotel(game, player.ID, action.PropertyID)
		case entity.ActionEndTurn:
			return nil
		}
	case entity.PhasePreRoll, entity.PhaseCompleted:
	}

	return fmt.Errorf("%w: %s is not allowed", apperror.ErrInvalidAction, action.Type)
}

func describe(action entity.Action, game *entity.Game) entity.LegalAction {
	out := entity.LegalAction{Type: action.Type, PropertyID: action.PropertyID}
	prop, _ := board.PropertyByID(action.PropertyID)

	switch action.Type {
	case entity.ActionRollDice:
		out.Description = "Roll the dice"
	case entity.ActionBuyProperty:
		out.Cost = prop.Price
		out.Description = fmt.Sprintf("Buy %s for $%d", prop.Name, prop.Price)
	case entity.ActionPassProperty:
		out.Description = "Pass on " + prop.Name
	case entity.ActionBuildHouse:
		out.Cost = prop.HouseCost
		out.Description = fmt.Sprintf("Build a house on %s for $%d", prop.Name, prop.HouseCost)
	case entity.ActionBuildHotel:
		out.Cost = prop.HouseCost
		out.Description = fmt.Sprintf("Build a hotel on %s for $%d", prop.Name, prop.HouseCost)
	case entity.ActionPayJailFine:
		out.Cost = JailFine
		out.Description = fmt.Sprintf("Pay $%d to leave jail", JailFine)
	case entity.ActionUseJailCard:
		out.Description = fmt.Sprintf("Use a Get Out of Jail Free card (%d held)", game.CurrentPlayer().GetOutOfJailCards)
	case entity.ActionRollForDoubles:
		out.Description = fmt.Sprintf("Roll for doubles (attempt %d of %d)", game.CurrentPlayer().JailTurns+1, MaxJailTurns)
	case entity.ActionEndTurn:
		out.Description = "End the turn"
	}

	return out
}
