package model

import "errors"

// Recoverable, user-visible failures. They are reported to the requesting
// player only and never mutate match state.
var (
	ErrGameNotFound       = errors.New("game not found")
	ErrNotInGame          = errors.New("player not in game")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameFull           = errors.New("game full")
	ErrGameNotStarted     = errors.New("game not started")
	ErrNotHost            = errors.New("only the host can start the game")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrAlreadyRolled      = errors.New("already rolled")
	ErrInvalidMove        = errors.New("invalid move")
)
