package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidPlayerName = errors.New("invalid player name")
	ErrRoundFinished     = errors.New("round is already finished")
)
