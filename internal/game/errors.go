package game

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrTableFull         = errors.New("table is full")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidAmount     = errors.New("amount must be > 0")
	ErrUnknownAction     = errors.New("unknown action")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrInsufficientChips = errors.New("not enough chips")
	ErrSelfLoan          = errors.New("cannot loan to yourself")
	ErrNoDebt            = errors.New("no debt found")
)
