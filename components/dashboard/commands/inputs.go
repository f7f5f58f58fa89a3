package commands

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks command payloads rejected before reaching the service.
var ErrInvalidInput = errors.New("eventdash: invalid command input")

var errMissingSessionID = fmt.Errorf("%w: session id is required", ErrInvalidInput)

// SessionInput addresses a mounted dashboard session.
type SessionInput struct {
	SessionID string `json:"session_id"`
}

func (in SessionInput) validate() error {
	if in.SessionID == "" {
		return errMissingSessionID
	}
	return nil
}

// CarouselDirection is the manual carousel transition.
type CarouselDirection string

const (
	CarouselNext CarouselDirection = "next"
	CarouselPrev CarouselDirection = "prev"
)

// CarouselInput moves a session's carousel one slide.
type CarouselInput struct {
	SessionID string            `json:"session_id"`
	Direction CarouselDirection `json:"direction"`
}

// SelectEventInput opens the detail modal for an event row.
type SelectEventInput struct {
	SessionID string `json:"session_id"`
	EventID   int    `json:"event_id"`
}
