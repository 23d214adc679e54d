package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	JailFine = 50
	// MaxJailTurns is the number of failed doubles attempts after which the fine is forced.
	MaxJailTurns = 3
)

func (that *turn) payJailFine(player *entity.Player) {
	player.Cash -= JailFine
	that.emit(player.ID, entity.EventJailFinePaid, map[string]any{"amount": JailFine, "forced": false})
	that.leaveJail(player, "fine")
}

// forceJailFine - takes the fine from a player who used up every doubles attempt.
// Returns false when the player couldn't pay and went bankrupt.
func (that *turn) forceJailFine(player *entity.Player) bool {
	if !that.charge(player, JailFine, nil) {
		return false
	}

	that.emit(player.ID, entity.EventJailFinePaid, map[string]any{"amount": JailFine, "forced": true})
	that.leaveJail(player, "forced_fine")

	return true
}

func (that *turn) useJailCard(player *entity.Player) {
	player.GetOutOfJailCards--
	that.emit(player.ID, entity.EventJailCardUsed, map[string]any{"remaining": player.GetOutOfJailCards})
	that.leaveJail(player, "card")
}

// rollForDoubles - a doubles roll frees the player and moves them by the roll; it never earns
// another roll. A miss uses up one attempt.
func (that *turn) rollForDoubles(player *entity.Player) {
	roll := that.rollDice(player)
	if !roll.IsDoubles() {
		player.JailTurns++
		return
	}

	that.leaveJail(player, "doubles")
	that.moveBy(player, roll.Total())
	that.resolveLanding(player, landing{})
}

func (that *turn) leaveJail(player *entity.Player, via string) {
	player.InJail = false
	player.JailTurns = 0
	that.emit(player.ID, entity.EventLeftJail, map[string]any{"via": via})
}
