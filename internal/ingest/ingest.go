// Package ingest converts a loosely structured FAQ document into
// knowledge-base entries. It is a one-shot utility run before serving;
// the serving core only reads the corpus file it writes.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tecw/truthengine/internal/model"
	"golang.org/x/net/html"
)

const maxDocumentBytes = 2_000_000

// Ingester builds corpus entries from an FAQ page or file.
type Ingester struct {
	httpClient *http.Client
	robots     *RobotsChecker
	userAgent  string
}

// NewIngester creates an ingester with polite-fetch defaults.
func NewIngester(timeout time.Duration, userAgent string) *Ingester {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if userAgent == "" {
		userAgent = "TruthEngine/1.0 (+https://govchat-sierraleone.gov.sl)"
	}

	return &Ingester{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    NewRobotsChecker(userAgent, timeout),
		userAgent: userAgent,
	}
}

// FromURL fetches an FAQ page (after a robots.txt check) and parses it
// into entries.
func (i *Ingester) FromURL(ctx context.Context, rawURL string) ([]model.KnowledgeEntry, error) {
	allowed, crawlDelay, err := i.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}
	if crawlDelay > 0 {
		select {
		case <-time.After(crawlDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", i.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return Parse(string(body))
}

// FromFile parses a local FAQ document.
func (i *Ingester) FromFile(path string) ([]model.KnowledgeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(string(data))
}

// Parse walks the FAQ HTML: each h2/h3 heading opens a topic, the
// paragraphs below it become the entry content, and keywords are derived
// from the heading words.
func Parse(htmlContent string) ([]model.KnowledgeEntry, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var entries []model.KnowledgeEntry
	var topic string
	var paragraphs []string

	flush := func() {
		if topic == "" || len(paragraphs) == 0 {
			return
		}
		entries = append(entries, model.KnowledgeEntry{
			ID:       fmt.Sprintf("kb-%03d", len(entries)+1),
			Topic:    topic,
			Content:  strings.Join(paragraphs, " "),
			Keywords: deriveKeywords(topic),
		})
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "h2", "h3":
				flush()
				topic = strings.TrimSpace(nodeText(n))
				paragraphs = nil
				return
			case "p", "li":
				if topic != "" {
					if text := strings.TrimSpace(nodeText(n)); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flush()

	return entries, nil
}

// WriteCorpus writes entries as the corpus JSON file the serving core
// loads at startup.
func WriteCorpus(path string, entries []model.KnowledgeEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}

// nodeText concatenates the text nodes under n.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

var keywordStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"of": true, "to": true, "in": true, "for": true, "how": true,
	"what": true, "is": true, "do": true, "i": true, "my": true,
	"about": true, "with": true, "on": true,
}

// deriveKeywords lowercases the topic words and drops stopwords and
// single-character tokens.
func deriveKeywords(topic string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(topic)) {
		word = strings.Trim(word, ".,;:!?\"'()")
		if len(word) < 2 || keywordStopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
