package respond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tecw/truthengine/internal/corpus"
	"github.com/tecw/truthengine/internal/model"
)

func offlineForTest(t *testing.T) (*OfflineResponder, *time.Duration) {
	t.Helper()
	c := corpus.New([]model.KnowledgeEntry{
		{
			ID:       "kb-001",
			Topic:    "Passport",
			Content:  "Passport applications are processed at the Immigration Department in Freetown.",
			Keywords: []string{"passport"},
		},
	})

	r := NewOfflineResponder(c, 500*time.Millisecond)
	var slept time.Duration
	r.sleep = func(d time.Duration) { slept = d }
	r.pickInt = func(n int) int { return 0 }
	return r, &slept
}

func TestOfflineRespond_CorpusMatchWinsAndIsLabelled(t *testing.T) {
	r, slept := offlineForTest(t)

	answer := r.Respond("where do I renew my passport")

	assert.Equal(t, "According to official records: Passport applications are processed at the Immigration Department in Freetown. (Offline Mode)", answer)
	assert.Equal(t, 500*time.Millisecond, *slept)
}

func TestOfflineRespond_CannedIntents(t *testing.T) {
	r, _ := offlineForTest(t)

	cases := []struct {
		message  string
		fragment string
	}{
		{"hello there", "Truth Engine assistant"},
		{"how are you today?", "functioning perfectly"},
		{"I need some help", "general questions"},
		{"what's the weather like", "sunny in the digital world"},
	}

	for _, tc := range cases {
		assert.Contains(t, r.Respond(tc.message), tc.fragment, "message: %s", tc.message)
	}
}

func TestOfflineRespond_JokeUsesInjectedPicker(t *testing.T) {
	r, _ := offlineForTest(t)
	r.pickInt = func(n int) int { return 2 }

	assert.Equal(t, offlineJokes[2], r.Respond("tell me a joke"))
}

func TestOfflineRespond_EchoFallbackNeverEmpty(t *testing.T) {
	r, _ := offlineForTest(t)

	answer := r.Respond("total eclipse next year?")

	assert.Contains(t, answer, "total eclipse next year?")
	assert.Contains(t, answer, "(Offline Mode")
}
