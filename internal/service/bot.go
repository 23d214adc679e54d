package service

import (
	"errors"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// jailFineReserve - cash a bot keeps after paying its way out of jail.
const jailFineReserve = 300

type BotService interface {
	ChooseAction(game *entity.Game) (entity.Action, error)
	FallbackAction(game *entity.Game) (entity.Action, error)
}

type randomSource interface {
	Intn(n int) int
}

type botService struct {
	random randomSource
}

func NewBotService(random randomSource) BotService {
	return &botService{random: random}
}

// ChooseAction - picks one of the legal actions of the current player. It buys whatever it can
// afford, builds on a coin flip and otherwise falls back to a random legal action.
func (that *botService) ChooseAction(game *entity.Game) (entity.Action, error) {
	legal := monopoly.LegalActions(game)
	if len(legal.Actions) == 0 {
		return entity.Action{}, ErrNoAvailableMoves
	}

	player := game.CurrentPlayer()

	if action, ok := find(legal.Actions, entity.ActionBuyProperty); ok {
		return action, nil
	}

	if action, ok := find(legal.Actions, entity.ActionUseJailCard); ok {
		return action, nil
	}

	if action, ok := find(legal.Actions, entity.ActionPayJailFine); ok && player.Cash-monopoly.JailFine >= jailFineReserve {
		return action, nil
	}

	if action, ok := find(legal.Actions, entity.ActionRollForDoubles); ok {
		return action, nil
	}

	builds := make([]entity.Action, 0, len(legal.Actions))
	for _, candidate := range legal.Actions {
		if candidate.Type == entity.ActionBuildHouse || candidate.Type == entity.ActionBuildHotel {
			builds = append(builds, candidate.Action())
		}
	}

	if len(builds) > 0 && that.random.Intn(2) == 0 {
		return builds[that.random.Intn(len(builds))], nil
	}

	if action, ok := find(legal.Actions, entity.ActionEndTurn); ok {
		return action, nil
	}

	return legal.Actions[that.random.Intn(len(legal.Actions))].Action(), nil
}

// FallbackAction - the move made for a current player who didn't decide in time.
func (that *botService) FallbackAction(game *entity.Game) (entity.Action, error) {
	return DefaultAction(monopoly.LegalActions(game).Actions)
}

// defaultPriority - the order in which a safe default is picked for a player that didn't decide.
var defaultPriority = []entity.ActionType{
	entity.ActionEndTurn,
	entity.ActionPassProperty,
	entity.ActionRollDice,
	entity.ActionPayJailFine,
}

// DefaultAction - returns the safest legal action: end the turn, decline a purchase, roll or pay
// the fine, in that order, else the first listed action.
func DefaultAction(actions []entity.LegalAction) (entity.Action, error) {
	for _, actionType := range defaultPriority {
		if action, ok := find(actions, actionType); ok {
			return action, nil
		}
	}

	if len(actions) == 0 {
		return entity.Action{}, ErrNoAvailableMoves
	}

	return actions[0].Action(), nil
}

func find(actions []entity.LegalAction, actionType entity.ActionType) (entity.Action, bool) {
	for _, action := range actions {
		if action.Type == actionType {
			return action.Action(), true
		}
	}

	return entity.Action{}, false
}
