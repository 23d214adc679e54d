package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// charge - takes a forced payment. A nil creditor is the bank. When the payer can't cover the
// amount they go bankrupt instead and the creditor receives nothing; the result is false then.
func (that *turn) charge(payer *entity.Player, amount int, creditor *entity.Player) bool {
	if amount <= 0 {
		return true
	}

	if payer.Cash < amount {
		that.bankrupt(payer, creditor, amount)
		return false
	}

	payer.Cash -= amount
	if creditor != nil {
		creditor.Cash += amount
	}

	return true
}

// payBank - a forced payment to the bank reported with the given event when it succeeds.
func (that *turn) payBank(player *entity.Player, amount int, event entity.EventType) {
	if amount <= 0 {
		return
	}

	if that.charge(player, amount, nil) {
		that.emit(player.ID, event, map[string]any{"amount": amount, "to": "bank"})
	}
}

// bankrupt - zeroes the player, returns every property they own to the bank with its
// buildings removed, and completes the game if one player is left.
func (that *turn) bankrupt(player *entity.Player, creditor *entity.Player, owed int) {
	released := make([]string, 0)
	for _, state := range that.game.PropertiesOwnedBy(player.ID) {
		state.Release()
		released = append(released, state.PropertyID)
	}

	player.Cash = 0
	player.IsBankrupt = true
	player.InJail = false
	player.JailTurns = 0
	player.GetOutOfJailCards = 0

	creditorID := "bank"
	if creditor != nil {
		creditorID = creditor.ID
	}

	that.emit(player.ID, entity.EventPlayerBankrupt, map[string]any{
		"creditor":            creditorID,
		"owed":                owed,
		"released_properties": released,
	})

	if active := that.game.ActivePlayers(); len(active) == 1 {
		that.complete(active[0])
	}
}

func (that *turn) complete(winner *entity.Player) {
	that.game.Status = entity.StatusCompleted
	that.game.Phase = entity.PhaseCompleted
	that.game.WinnerID = winner.ID
	that.game.PendingPurchase = ""
	that.game.DoublesCount = 0

	that.emit(winner.ID, entity.EventGameEnded, map[string]any{"winner_id": winner.ID})
}

// NetWorth - cash plus the printed price of every owned property plus half of what was
// spent on buildings.
func NetWorth(game *entity.Game, playerID string) int {
	player := game.Player(playerID)
	if player == nil {
		return 0
	}

	worth := player.Cash
	for _, state := range game.PropertiesOwnedBy(playerID) {
		prop, _ := board.PropertyByID(state.PropertyID)
		worth += prop.Price + state.Houses*prop.HouseCost/2
	}

	return worth
}
