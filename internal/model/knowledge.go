package model

// KnowledgeEntry is a single topic entry in the local corpus
type KnowledgeEntry struct {
	ID       string   `json:"id"`       // Stable identifier, unique within the corpus
	Topic    string   `json:"topic"`    // Short topic label
	Content  string   `json:"content"`  // Free-text official answer
	Keywords []string `json:"keywords"` // Lowercased trigger tokens
}

// TrustedSource is an entry in the static authority table
type TrustedSource struct {
	Domain         string  `json:"domain"`
	AuthorityScore float64 `json:"authority_score"` // In [0,1]
	Name           string  `json:"name"`
}
