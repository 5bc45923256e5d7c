// Package verify implements rule-based claim scoring and the verdict
// policy. It requires no network access and is the deterministic
// fallback behind the provider chain.
package verify

import (
	"strings"
	"time"

	"github.com/tecw/truthengine/internal/model"
)

// scamPhrases are literal indicators. Each occurrence adds scamWeight to
// the scam score; multiple hits compound without a cap at this stage.
var scamPhrases = []string{
	"government giving money",
	"register to receive",
	"click this link to claim",
	"account suspended",
	"verify your account",
}

const scamWeight = 0.3

// trustedSources is the static, process-wide authority table.
var trustedSources = []model.TrustedSource{
	{Domain: "statehouse.gov.sl", AuthorityScore: 1.0, Name: "Sierra Leone State House"},
	{Domain: "who.int", AuthorityScore: 0.95, Name: "World Health Organization"},
	{Domain: "bbc.com/news", AuthorityScore: 0.85, Name: "BBC News"},
}

// sourceTrigger attaches a canonical authority when any of its keywords
// appears in the text. This simulates a real source-matching subsystem:
// text mentioning topic X attaches the authority for X.
type sourceTrigger struct {
	keywords []string
	url      string
	title    string
	score    float64
}

var sourceTriggers = []sourceTrigger{
	{
		keywords: []string{"government", "president"},
		url:      "https://statehouse.gov.sl/press-releases",
		title:    "State House Official Press Releases",
		score:    1.0,
	},
	{
		keywords: []string{"ebola", "health"},
		url:      "https://who.int/countries/sle",
		title:    "WHO Sierra Leone",
		score:    0.95,
	},
}

// TrustedSources returns the static authority table.
func TrustedSources() []model.TrustedSource {
	return trustedSources
}

// Scorer applies scam-pattern detection and trusted-source matching to
// raw text. It is stateless and safe for concurrent use.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer. The clock is injectable for tests.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// ScoreResult carries the scorer's signals for the verdict policy.
type ScoreResult struct {
	ScamScore      float64
	MatchedSources []model.MatchedSource
}

// Score evaluates the lowercased text against the scam phrase list and
// the source triggers. Matched sources get a fresh checked-at timestamp.
func (s *Scorer) Score(text string) ScoreResult {
	lower := strings.ToLower(text)

	var scamScore float64
	for _, phrase := range scamPhrases {
		if strings.Contains(lower, phrase) {
			scamScore += scamWeight
		}
	}

	var matched []model.MatchedSource
	for _, trigger := range sourceTriggers {
		for _, keyword := range trigger.keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, model.MatchedSource{
					URL:            trigger.url,
					Title:          trigger.title,
					AuthorityScore: trigger.score,
					LastChecked:    s.now().UTC(),
				})
				break
			}
		}
	}

	return ScoreResult{ScamScore: scamScore, MatchedSources: matched}
}
