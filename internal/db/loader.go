package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"arogyam-chatbot/internal/retrieval"
)

// SeedEntry is one knowledge fact in a seed file: Title is the searchable
// key (question, symptom name, scheme name, risk name) and Text the fact
// body stored alongside it.
type SeedEntry struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Loader bulk-embeds seed entries and inserts them into a topic's
// knowledge table.
type Loader struct {
	db       *sql.DB
	embedder retrieval.Embedder
	logger   *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(db *sql.DB, embedder retrieval.Embedder, logger *zap.Logger) *Loader {
	return &Loader{db: db, embedder: embedder, logger: logger}
}

// LoadFile reads a JSON array of seed entries and inserts them into the
// topic's table, embedding title and text together. Returns the number of
// rows inserted; entries that fail to embed are skipped, not fatal.
func (l *Loader) LoadFile(ctx context.Context, topic retrieval.Topic, path string) (int, error) {
	spec, ok := retrieval.TopicTable(topic)
	if !ok {
		return 0, errors.Errorf("unknown topic %q", topic)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read seed file %s", path)
	}
	var entries []SeedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return 0, errors.Wrapf(err, "failed to parse seed file %s", path)
	}

	stmt := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, embedding) VALUES ($1, $2, $3)`,
		spec.Name, spec.TitleColumn, spec.TextColumn,
	)

	inserted := 0
	for _, e := range entries {
		if e.Title == "" && e.Text == "" {
			continue
		}
		embedding, err := l.embedder.Embed(ctx, e.Title+" "+e.Text)
		if err != nil {
			l.logger.Warn("failed to embed seed entry, skipping",
				zap.String("topic", string(topic)),
				zap.String("title", e.Title),
				zap.Error(err))
			continue
		}
		if _, err := l.db.ExecContext(ctx, stmt, e.Title, e.Text, pgvector.NewVector(embedding)); err != nil {
			return inserted, errors.Wrapf(err, "failed to insert into %s", spec.Name)
		}
		inserted++
	}

	l.logger.Info("seed file loaded",
		zap.String("topic", string(topic)),
		zap.String("file", path),
		zap.Int("inserted", inserted),
		zap.Int("total", len(entries)))
	return inserted, nil
}
