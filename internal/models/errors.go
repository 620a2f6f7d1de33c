package models

import "github.com/pkg/errors"

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrIllegalVote          = errors.New("illegal vote")
	ErrDuplicateParticipant = errors.New("duplicate participant name")
	ErrInvalidParticipant   = errors.New("invalid participant record")
	ErrInvalidGame          = errors.New("invalid game document")
)
