package retrieval

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"
)

// Embedder turns a query into the vector used for the KNN search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// PostgresRetriever runs cosine-distance KNN queries against the pgvector
// knowledge tables.
type PostgresRetriever struct {
	db       *sql.DB
	embedder Embedder
}

// NewPostgresRetriever constructs a retriever over an existing connection.
func NewPostgresRetriever(db *sql.DB, embedder Embedder) *PostgresRetriever {
	return &PostgresRetriever{db: db, embedder: embedder}
}

// Search embeds the query and returns up to topK hits ordered by descending
// cosine similarity.
func (r *PostgresRetriever) Search(ctx context.Context, topic Topic, query string, topK int) ([]Hit, error) {
	spec, ok := TopicTable(topic)
	if !ok {
		return nil, errors.Errorf("unknown retrieval topic %q", topic)
	}
	if topK <= 0 {
		topK = 3
	}

	embedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to embed query")
	}

	// <=> is pgvector cosine distance, so similarity = 1 - distance.
	stmt := fmt.Sprintf(`
		SELECT id, %s, 1 - (embedding <=> $1) AS similarity
		FROM %s
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`, spec.TextColumn, spec.Name)

	rows, err := r.db.QueryContext(ctx, stmt, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s", spec.Name)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.Text, &h.Similarity); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s hit", spec.Name)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
