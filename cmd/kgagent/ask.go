package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the stored facts",
	Long: `Answer a question using only the facts of the configured group.

The answer is grounded in at most --top-k facts, chosen by embedding
similarity after narrowing to the entity the question names.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var (
	askShowContext bool
	askJSON        bool
)

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().Int("top-k", 5, "number of facts used to ground the answer")
	askCmd.Flags().Float64("match-threshold", 0.6, "minimum similarity for an entity match")
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "print the facts the answer was grounded on")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the answer as JSON")

	viper.BindPFlag("retrieval.top_k", askCmd.Flags().Lookup("top-k"))
	viper.BindPFlag("retrieval.match_threshold", askCmd.Flags().Lookup("match-threshold"))
}

// commandContext returns a context cancelled on SIGINT or SIGTERM and tagged
// as a CLI request.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	ctx = context.WithValue(ctx, types.ContextKeyRequestSource, "cli")
	ctx = context.WithValue(ctx, types.ContextKeyRequestID, uuid.New().String())
	return ctx, cancel
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	question := strings.Join(args, " ")
	answer, err := client.Answer(ctx, question)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(answer)
	}

	fmt.Fprintln(out, answer.Text)
	if askShowContext && answer.Context != "" {
		fmt.Fprintln(out)
		if answer.Entity != "" {
			fmt.Fprintf(out, "Entity: %s\n", answer.Entity)
		}
		fmt.Fprintln(out, "Facts:")
		fmt.Fprintln(out, answer.Context)
	}
	return nil
}
