package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tecw/truthengine/internal/ingest"
	"github.com/tecw/truthengine/internal/model"
	"go.uber.org/zap"
)

var (
	ingestOutput    string
	ingestTimeout   time.Duration
	ingestUserAgent string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <url|file>",
	Short: "Build the knowledge corpus from an FAQ document",
	Long: `Ingest converts a loosely structured FAQ document (HTML page or local
file) into the knowledge-base JSON the engine loads at startup.

Each h2/h3 heading opens a topic; the paragraphs below it become the
entry content; keywords are derived from the heading. Remote pages are
fetched politely (robots.txt is honored).

Example:
  truthengine ingest https://example.gov.sl/faq --output data/knowledge_base.json
  truthengine ingest ./faq.html`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestOutput, "output", "data/knowledge_base.json", "output corpus path")
	ingestCmd.Flags().DurationVar(&ingestTimeout, "timeout", 30*time.Second, "fetch timeout")
	ingestCmd.Flags().StringVar(&ingestUserAgent, "ua", "", "HTTP User-Agent override")
}

func runIngest(cmd *cobra.Command, args []string) error {
	source := args[0]

	ingester := ingest.NewIngester(ingestTimeout, ingestUserAgent)

	var entries []model.KnowledgeEntry
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout+10*time.Second)
		defer cancel()
		entries, err = ingester.FromURL(ctx, source)
	} else {
		entries, err = ingester.FromFile(source)
	}
	if err != nil {
		return err
	}

	if err := ingest.WriteCorpus(ingestOutput, entries); err != nil {
		return err
	}

	logger.Info("corpus written",
		zap.String("source", source),
		zap.String("output", ingestOutput),
		zap.Int("entries", len(entries)))

	return nil
}
