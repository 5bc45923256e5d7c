package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tecw/truthengine/internal/model"
)

func testCorpus() *Corpus {
	return New([]model.KnowledgeEntry{
		{
			ID:       "kb-001",
			Topic:    "Passport",
			Content:  "Passport applications are processed at the Immigration Department in Freetown.",
			Keywords: []string{"passport", "travel", "immigration"},
		},
		{
			ID:       "kb-002",
			Topic:    "Feed Salone",
			Content:  "Feed Salone is the national agriculture programme.",
			Keywords: []string{"feed salone", "agriculture", "farming"},
		},
		{
			ID:       "kb-003",
			Topic:    "Emergency",
			Content:  "Dial 117 for all emergencies.",
			Keywords: []string{"emergency", "police", "ambulance"},
		},
		{
			ID:       "kb-004",
			Topic:    "Travel advisory",
			Content:  "Travel advisories are published by the Ministry of Foreign Affairs.",
			Keywords: []string{"travel", "advisory"},
		},
	})
}

func TestRetriever_NoOverlap_ReturnsEmpty(t *testing.T) {
	r := NewRetriever(testCorpus())

	results := r.Retrieve("what is the melting point of iron")

	assert.Empty(t, results)
}

func TestRetriever_EmptyCorpus_ReturnsEmpty(t *testing.T) {
	r := NewRetriever(New(nil))

	assert.Empty(t, r.Retrieve("passport"))
}

func TestRetriever_NeverMoreThanTwo(t *testing.T) {
	r := NewRetriever(testCorpus())

	// Touches keywords of three entries
	results := r.Retrieve("emergency travel passport")

	assert.Len(t, results, 2)
}

func TestRetriever_OrderedByScoreDescending(t *testing.T) {
	r := NewRetriever(testCorpus())

	// kb-001 matches passport+travel+immigration (3), kb-004 matches travel (1)
	results := r.Retrieve("I lost my passport before travel, immigration said to reapply")

	assert.Equal(t, []string{
		"Passport applications are processed at the Immigration Department in Freetown.",
		"Travel advisories are published by the Ministry of Foreign Affairs.",
	}, results)
}

func TestRetriever_TiesKeepCorpusOrder(t *testing.T) {
	r := NewRetriever(testCorpus())

	// kb-001 and kb-004 both match only "travel"
	results := r.Retrieve("travel rules")

	assert.Equal(t, []string{
		"Passport applications are processed at the Immigration Department in Freetown.",
		"Travel advisories are published by the Ministry of Foreign Affairs.",
	}, results)
}

func TestRetriever_MatchIsCaseInsensitive(t *testing.T) {
	r := NewRetriever(testCorpus())

	results := r.Retrieve("HOW DO I RENEW MY PASSPORT?")

	assert.Len(t, results, 1)
	assert.Contains(t, results[0], "Immigration Department")
}
