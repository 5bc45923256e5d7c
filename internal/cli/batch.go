package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tecw/truthengine/internal/model"
	"github.com/tecw/truthengine/internal/verify"
	"github.com/tecw/truthengine/internal/worker"
	"go.uber.org/zap"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple claims from a file in parallel",
	Long: `Batch reads one claim per line from the input file, verifies each with
the rule-based verdict engine, and writes one JSON report per claim to
the output directory.

Example:
  truthengine batch claims.txt
  truthengine batch claims.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./truthengine-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	claims, err := readClaims(file)
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		return fmt.Errorf("no claims found in %s", file)
	}

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := loadConfig()
	workers := batchConcurrency
	if !cmd.Flags().Changed("concurrency") && cfg.Concurrency.Workers > 0 {
		workers = cfg.Concurrency.Workers
	}

	logger.Info("batch verification starting",
		zap.String("input", file),
		zap.Int("claims", len(claims)),
		zap.Int("workers", workers))

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	engine := verify.NewEngine()
	pool := worker.NewPool(workers, func(ctx context.Context, claim string) model.VerificationResult {
		return engine.Verify(model.VerificationInput{Kind: model.ContentText, Text: claim})
	})

	reports := pool.Run(ctx, claims)

	counts := make(map[model.Verdict]int)
	for _, report := range reports {
		counts[report.Result.Verdict]++

		path := filepath.Join(batchOutputDir, fmt.Sprintf("claim-%03d.json", report.Index+1))
		data, err := json.MarshalIndent(report.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logger.Info("batch verification complete",
		zap.Int("verified", len(reports)),
		zap.Int("true", counts[model.VerdictTrue]),
		zap.Int("false", counts[model.VerdictFalse]),
		zap.Int("unverified", counts[model.VerdictUnverified]),
		zap.String("output_dir", batchOutputDir))

	return nil
}

// readClaims reads non-empty lines from the input file.
func readClaims(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open claims file: %w", err)
	}
	defer f.Close()

	var claims []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			claims = append(claims, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read claims file: %w", err)
	}
	return claims, nil
}
