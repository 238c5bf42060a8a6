// Package session holds the per-user clarification dialogue state and its
// pluggable stores.
package session

import (
	"context"

	"arogyam-chatbot/internal/lang"
)

// Awaiting names the follow-up field the bot expects next. A session exists
// in the store if and only if it awaits something.
type Awaiting string

const (
	AwaitingDuration Awaiting = "duration"
	AwaitingSeverity Awaiting = "severity"
	AwaitingSymptoms Awaiting = "symptoms"
)

// Session is one user's in-progress symptom clarification dialogue. Fields
// fill strictly duration -> severity -> extra symptoms; Lang is locked at
// dialogue start and reused for every reply in the session.
type Session struct {
	UserID        string
	Awaiting      Awaiting
	LastFact      string
	Duration      string
	Severity      string
	ExtraSymptoms string
	Lang          lang.Language
}

// Store persists at most one session per user. Get returns (nil, nil) when
// no session exists. Implementations must apply each call atomically with
// respect to other calls for the same user.
type Store interface {
	Get(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID string) error
}
