// Package corpus holds the local knowledge base and keyword retrieval.
package corpus

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tecw/truthengine/internal/model"
	"go.uber.org/zap"
)

// Corpus is the read-only collection of knowledge entries. It is loaded
// once at startup and safe for unsynchronized concurrent reads.
type Corpus struct {
	entries []model.KnowledgeEntry
}

// Load reads the corpus file. A missing or malformed file degrades to an
// empty corpus: retrieval then returns nothing, which callers treat as
// "no official context available", never as an error.
func Load(path string, logger *zap.Logger) *Corpus {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("corpus unavailable, continuing with empty corpus",
			zap.String("path", path),
			zap.Error(err))
		return &Corpus{}
	}

	var entries []model.KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("corpus parse failed, continuing with empty corpus",
			zap.String("path", path),
			zap.Error(err))
		return &Corpus{}
	}

	logger.Debug("corpus loaded",
		zap.String("path", path),
		zap.Int("entries", len(entries)))

	return &Corpus{entries: entries}
}

// New builds a corpus from in-memory entries. Used by tests and by the
// ingest command before writing the corpus file.
func New(entries []model.KnowledgeEntry) *Corpus {
	return &Corpus{entries: entries}
}

// Entries returns the corpus entries in load order.
func (c *Corpus) Entries() []model.KnowledgeEntry {
	return c.entries
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// ExactKeywordMatch returns the content of the first entry whose keyword
// appears verbatim in the lowercased message. Used by the offline
// responder, which answers from local records when no provider is
// reachable.
func (c *Corpus) ExactKeywordMatch(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, entry := range c.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Content, true
			}
		}
	}
	return "", false
}
