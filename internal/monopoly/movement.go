package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/board"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// Advance - returns the position reached by moving steps spaces from position, and whether
// the move wrapped around or landed on GO. Backward moves never count as passing GO.
func Advance(position, steps int) (int, bool) {
	next := ((position+steps)%board.Size + board.Size) % board.Size
	if steps <= 0 {
		return next, false
	}

	return next, next < position || next == board.GoPosition
}

// moveBy - moves the player by steps and pays the GO salary when it applies.
func (that *turn) moveBy(player *entity.Player, steps int) {
	next, passedGo := Advance(player.Position, steps)
	that.relocate(player, next, passedGo)
}

// moveTo - moves the player forward to an absolute position, wrapping through GO if needed.
func (that *turn) moveTo(player *entity.Player, position int) {
	passedGo := position < player.Position || position == board.GoPosition
	that.relocate(player, position, passedGo)
}

func (that *turn) relocate(player *entity.Player, position int, passedGo bool) {
	from := player.Position
	player.Position = position

	that.emit(player.ID, entity.EventPlayerMoved, map[string]any{
		"from":  from,
		"to":    position,
		"space": board.SpaceAt(position).Name,
	})

	if passedGo {
		player.Cash += board.GoSalary
		that.emit(player.ID, entity.EventPassedGo, map[string]any{"amount": board.GoSalary})
	}
}

// sendToJail - moves the player straight to jail. No GO salary is paid.
func (that *turn) sendToJail(player *entity.Player, reason string) {
	player.Position = board.JailPosition
	player.InJail = true
	player.JailTurns = 0

	that.emit(player.ID, entity.EventSentToJail, map[string]any{"reason": reason})
}
