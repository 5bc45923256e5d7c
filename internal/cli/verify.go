package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tecw/truthengine/internal/model"
	"github.com/tecw/truthengine/internal/verify"
)

var (
	verifyImageCaption string
	verifyImageURL     string
	verifyAudio        bool
	verifyWithLLM      bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <claim>",
	Short: "Verify a factual claim",
	Long: `Verify assesses a claim and prints a verdict as a single JSON document
on stdout.

By default the rule-based verdict engine runs locally: scam-pattern
detection, trusted-source matching, and an ordered decision policy. No
network access is required.

With --llm the claim is instead sent through the provider chain for a
structured opinion; if every provider fails, a fixed unverified result
is returned.

Example:
  truthengine verify "President Bio attended UN General Assembly"
  truthengine verify "Government giving Le500,000 to all citizens. Register now!"
  truthengine verify "Transfer confirmed" --image-caption "Orange Money credit alert"`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyImageCaption, "image-caption", "", "treat the claim as an image with this caption/OCR text")
	verifyCmd.Flags().StringVar(&verifyImageURL, "image-url", "", "URL of an uploaded image offered as evidence (--llm only)")
	verifyCmd.Flags().BoolVar(&verifyAudio, "audio", false, "treat the claim as an audio message")
	verifyCmd.Flags().BoolVar(&verifyWithLLM, "llm", false, "ask a remote provider for a structured opinion")
}

func runVerify(cmd *cobra.Command, args []string) error {
	claim := args[0]
	encoder := json.NewEncoder(os.Stdout)

	if verifyWithLLM {
		cfg := loadConfig()
		orch := buildOrchestrator(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout(cfg))
		defer cancel()

		verdict := orch.VerifyClaim(ctx, claim, verifyImageURL)
		if err := encoder.Encode(verdict); err != nil {
			return fmt.Errorf("encode verdict: %w", err)
		}
		return nil
	}

	input := model.VerificationInput{Kind: model.ContentText, Text: claim}
	switch {
	case verifyAudio:
		input = model.VerificationInput{Kind: model.ContentAudio}
	case verifyImageCaption != "":
		input = model.VerificationInput{Kind: model.ContentImage, Caption: verifyImageCaption}
	}

	engine := verify.NewEngine()
	result := engine.Verify(input)

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
