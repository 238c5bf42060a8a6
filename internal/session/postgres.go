package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"arogyam-chatbot/internal/lang"
)

// PostgresStore keeps one session row per user so dialogues survive
// restarts and can be shared across replicas.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a store over an existing connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get loads the user's session, or (nil, nil) when none exists.
func (p *PostgresStore) Get(ctx context.Context, userID string) (*Session, error) {
	var (
		s        Session
		language string
	)
	err := p.db.QueryRowContext(ctx, `
		SELECT user_id, awaiting, last_fact, duration, severity, extra_symptoms, lang
		FROM chat_sessions
		WHERE user_id = $1
	`, userID).Scan(&s.UserID, &s.Awaiting, &s.LastFact, &s.Duration, &s.Severity, &s.ExtraSymptoms, &language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	s.Lang = lang.Language(language)
	return &s, nil
}

// Save upserts the session row.
func (p *PostgresStore) Save(ctx context.Context, s *Session) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO chat_sessions (user_id, awaiting, last_fact, duration, severity, extra_symptoms, lang, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id)
		DO UPDATE SET
			awaiting = EXCLUDED.awaiting,
			last_fact = EXCLUDED.last_fact,
			duration = EXCLUDED.duration,
			severity = EXCLUDED.severity,
			extra_symptoms = EXCLUDED.extra_symptoms,
			lang = EXCLUDED.lang,
			updated_at = EXCLUDED.updated_at
	`, s.UserID, s.Awaiting, s.LastFact, s.Duration, s.Severity, s.ExtraSymptoms, string(s.Lang), time.Now())
	return errors.Wrap(err, "failed to save session")
}

// Delete removes the user's session row. Deleting an absent row is a no-op.
func (p *PostgresStore) Delete(ctx context.Context, userID string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE user_id = $1`, userID)
	return errors.Wrap(err, "failed to delete session")
}
