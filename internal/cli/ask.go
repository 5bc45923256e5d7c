package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tecw/truthengine/internal/respond"
)

var askMode string

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask the Truth Engine a question",
	Long: `Ask sends a message through the provider fallback chain and prints the
answer as a single JSON document on stdout.

The mode selects a response style:
  chat      plain conversation (default)
  research  detailed, well-sourced answers
  thinking  step-by-step reasoning
  shopping  procurement and local-business guidance
  image     acknowledge an image request (no image is generated)

Example:
  truthengine ask "How do I apply for a passport?"
  truthengine ask "Compare rice prices in Freetown" --mode shopping`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askMode, "mode", "chat", "response mode (chat, research, thinking, shopping, image)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	message := args[0]

	mode, err := respond.ParseMode(askMode)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	orch := buildOrchestrator(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout(cfg))
	defer cancel()

	response := orch.Respond(ctx, message, mode)

	out := struct {
		Response string `json:"response"`
		Mode     string `json:"mode"`
	}{Response: response, Mode: string(mode)}

	encoder := json.NewEncoder(os.Stdout)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
