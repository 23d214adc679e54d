package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction - the action is not in the legal set or targets something the actor can't use.
	ErrInvalidAction = errors.New("invalid action")
	// ErrIllegalStateTransition - the game is waiting or completed and can't accept the request.
	ErrIllegalStateTransition = errors.New("illegal state transition")
	// ErrInsufficientFunds - a voluntary payment (buy, build, fine) exceeds the player's cash.
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidPlayers = errors.New("invalid players")

	ErrNotYourTurn      = fmt.Errorf("%w: it's not your turn", ErrInvalidAction)
	ErrGameFinished     = fmt.Errorf("%w: game is already finished", ErrIllegalStateTransition)
	ErrGameIsNotStarted = fmt.Errorf("%w: game is not started", ErrIllegalStateTransition)
	ErrGameStarted      = fmt.Errorf("%w: game is already started", ErrIllegalStateTransition)
)
