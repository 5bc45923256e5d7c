package verify

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tecw/truthengine/internal/model"
)

// Engine turns verification inputs into verdicts. Results are built
// fresh per call and never mutated afterwards.
type Engine struct {
	scorer *Scorer
	now    func() time.Time
}

// NewEngine creates a verdict engine.
func NewEngine() *Engine {
	return &Engine{
		scorer: NewScorer(),
		now:    time.Now,
	}
}

// Verify dispatches on the input's content kind. Any kind outside
// {text, image, audio} yields an UNVERIFIED result at zero confidence,
// not an error.
func (e *Engine) Verify(input model.VerificationInput) model.VerificationResult {
	var result model.VerificationResult
	switch input.Kind {
	case model.ContentText:
		result = e.verifyText(input.Text)
	case model.ContentImage:
		result = e.verifyImage(input.Caption)
	case model.ContentAudio:
		result = e.verifyAudio()
	default:
		result = model.VerificationResult{
			Verdict:    model.VerdictUnverified,
			Confidence: 0.0,
			Reasoning:  []string{"Unsupported content type"},
			Timestamp:  e.now().UTC(),
		}
	}

	result.ID = uuid.NewString()
	if hash, err := Fingerprint(input); err == nil {
		result.EvidenceHash = hash
	}
	return result
}

// verifyText runs the scorer and walks the ordered policy table.
func (e *Engine) verifyText(text string) model.VerificationResult {
	scored := e.scorer.Score(text)

	in := policyInput{
		lowerText:  strings.ToLower(text),
		scamScore:  scored.ScamScore,
		sources:    scored.MatchedSources,
		confidence: confidenceFor(scored.ScamScore, len(scored.MatchedSources)),
	}

	var d decision
	for _, rule := range textPolicy {
		if rule.when(in) {
			d = rule.then(in)
			break
		}
	}

	confidence := d.confidence
	if !d.overrideConfidence {
		confidence = clamp01(confidence)
	}

	return model.VerificationResult{
		Verdict:        d.verdict,
		Confidence:     confidence,
		Reasoning:      d.reasoning,
		MatchedSources: scored.MatchedSources,
		Timestamp:      e.now().UTC(),
	}
}

// verifyImage applies the simulated forensic check. Real OCR is an
// external collaborator's job; the caption stands in for its output.
func (e *Engine) verifyImage(caption string) model.VerificationResult {
	var indicators []string
	if strings.Contains(strings.ToLower(caption), "orange money") {
		indicators = append(indicators, "Potential fake banking message")
	}

	verdict := model.VerdictUnverified
	confidence := 0.50
	if len(indicators) > 0 {
		verdict = model.VerdictFalse
		confidence = 0.85
	}

	reasoning := []string{"OCR analysis completed"}
	reasoning = append(reasoning, indicators...)
	reasoning = append(reasoning, "Image metadata examined")

	return model.VerificationResult{
		Verdict:    verdict,
		Confidence: confidence,
		Reasoning:  reasoning,
		Forensics: &model.Forensics{
			OCRText:    caption,
			Indicators: indicators,
		},
		Timestamp: e.now().UTC(),
	}
}

// verifyAudio declares transcription complete without performing it.
func (e *Engine) verifyAudio() model.VerificationResult {
	return model.VerificationResult{
		Verdict:    model.VerdictUnverified,
		Confidence: 0.45,
		Reasoning: []string{
			"Audio transcription completed",
			"Language detected: Krio",
			"Requires human review for verification",
		},
		Timestamp: e.now().UTC(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
