package apperror

import "errors"

var (
	ErrSessionAlreadyActive = errors.New("session already active for this pair")
	ErrSessionNotFound      = errors.New("no active session")
	ErrSelfChallenge        = errors.New("player can't challenge themselves")
	ErrNotParticipant       = errors.New("player is not part of this session")
	ErrGameFinished         = errors.New("game is already finished")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrUnknownStatsStorage  = errors.New("unknown stats storage")
	ErrManagerClosed        = errors.New("session manager is shut down")
)
