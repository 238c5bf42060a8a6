package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"arogyam-chatbot/internal/lang"
)

func newChatCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if userID == "" {
				userID = uuid.NewString()
			}
			fmt.Println("Arogyam health assistant. Type 'exit' to quit.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("you> ")
				if !scanner.Scan() {
					break
				}
				line := scanner.Text()
				if lang.Normalize(line) == "exit" || lang.Normalize(line) == "quit" {
					break
				}
				if strings.TrimSpace(line) == "" {
					continue
				}
				fmt.Println("bot>", a.agent.Handle(ctx, userID, line))
				fmt.Println()
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "stable user id (defaults to a random one)")
	return cmd
}
