package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arogyam-chatbot/internal/db"
	"arogyam-chatbot/internal/retrieval"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <topic> <seed-file>",
		Short: "Embed and load knowledge facts (faq|scheme|symptom|risk) from a JSON seed file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			loader := db.NewLoader(a.db, a.client, a.logger)
			inserted, err := loader.LoadFile(ctx, retrieval.Topic(args[0]), args[1])
			if err != nil {
				return err
			}
			a.logger.Info("load complete", zap.Int("inserted", inserted))
			return nil
		},
	}
}
