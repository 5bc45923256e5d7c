package model

import "time"

// ContentKind tags the payload of a VerificationInput
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
	ContentAudio ContentKind = "audio"
)

// VerificationInput is a tagged union over content kinds. Exactly one
// payload field is meaningful for a given Kind: Text for text inputs,
// Caption (OCR text) for images. Audio carries no usable payload.
type VerificationInput struct {
	Kind    ContentKind `json:"type"`
	Text    string      `json:"text,omitempty"`
	Caption string      `json:"caption,omitempty"`
}

// MatchedSource is a trusted source attached to a verification result
type MatchedSource struct {
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	AuthorityScore float64   `json:"authority_score"`
	LastChecked    time.Time `json:"last_checked"`
}

// Forensics carries the simulated image-analysis sub-record
type Forensics struct {
	OCRText    string   `json:"ocr_text"`
	Indicators []string `json:"indicators"`
}

// VerificationResult is produced fresh per claim and never mutated after
// construction. It is not persisted by the engine.
type VerificationResult struct {
	ID             string          `json:"id"`
	Verdict        Verdict         `json:"verdict"`
	Confidence     float64         `json:"confidence"` // Clamped to [0,1]
	Reasoning      []string        `json:"reasoning"`
	MatchedSources []MatchedSource `json:"matched_sources"`
	Forensics      *Forensics      `json:"forensics,omitempty"`
	EvidenceHash   string          `json:"evidence_hash,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}
