package corpus

import (
	"sort"
	"strings"
)

// topK is the fixed number of context snippets attached to a query.
const topK = 2

// Retriever narrows the corpus to the entries most relevant to a query
// by keyword overlap. It has no side effects and never fails.
type Retriever struct {
	corpus *Corpus
}

// NewRetriever creates a retriever over the given corpus.
func NewRetriever(c *Corpus) *Retriever {
	return &Retriever{corpus: c}
}

type scoredEntry struct {
	score   int
	order   int // Original corpus position, tie-break
	content string
}

// Retrieve scores every entry by how many of its keywords occur as
// substrings of the lowercased query, drops zero scores, and returns the
// content of the top two entries. The sort is stable: equal scores keep
// corpus order. An empty result means no official context is available.
func (r *Retriever) Retrieve(query string) []string {
	lower := strings.ToLower(query)

	var matched []scoredEntry
	for i, entry := range r.corpus.Entries() {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > 0 {
			matched = append(matched, scoredEntry{score: score, order: i, content: entry.Content})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].order < matched[j].order
	})

	if len(matched) > topK {
		matched = matched[:topK]
	}

	results := make([]string, 0, len(matched))
	for _, m := range matched {
		results = append(results, m.content)
	}
	return results
}
