// Command arogyam runs the health-assistant chatbot: an HTTP API server,
// an interactive terminal chat, and a knowledge-table loader.
package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arogyam-chatbot/internal/config"
	"arogyam-chatbot/internal/core"
	"arogyam-chatbot/internal/db"
	"arogyam-chatbot/internal/lang"
	"arogyam-chatbot/internal/llm"
	"arogyam-chatbot/internal/logging"
	"arogyam-chatbot/internal/retrieval"
	"arogyam-chatbot/internal/session"
)

func main() {
	root := &cobra.Command{
		Use:           "arogyam",
		Short:         "Conversational front-end for the Arogyam health-information service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newChatCmd(), newLoadCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// app wires the full dependency graph: config, logger, database, LLM
// client, retriever, session store, dialogue engine.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *sql.DB
	client    *llm.OpenAIClient
	retriever retrieval.Retriever
	agent     *core.Agent
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	client := llm.NewOpenAIClient(llm.Config{
		BaseURL:        cfg.OpenAIBaseURL,
		APIKey:         cfg.OpenAIAPIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
	}, logger)

	retriever := retrieval.NewPostgresRetriever(conn, client)

	var store session.Store
	switch cfg.SessionBackend {
	case config.SessionBackendPostgres:
		store = session.NewPostgresStore(conn)
	default:
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

	classifier := lang.NewClassifier(lang.NewLinguaDetector())
	agent := core.NewAgent(store, retriever, client, classifier, logger, cfg.RetrievalTopK)

	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        conn,
		client:    client,
		retriever: retriever,
		agent:     agent,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	_ = a.db.Close()
}
