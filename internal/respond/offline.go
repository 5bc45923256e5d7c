package respond

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/tecw/truthengine/internal/corpus"
)

var offlineJokes = []string{
	"Why did the programmer quit his job? Because he didn't get arrays.",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"How many programmers does it take to change a light bulb? None, that's a hardware problem.",
}

// OfflineResponder is the deterministic local fallback. It cannot fail:
// every message receives a non-empty answer without any network access.
type OfflineResponder struct {
	corpus *corpus.Corpus
	delay  time.Duration

	// Injectable for tests
	sleep   func(time.Duration)
	pickInt func(n int) int
}

// NewOfflineResponder creates the local responder. The delay keeps
// offline answers from returning suspiciously faster than a real remote
// call would.
func NewOfflineResponder(c *corpus.Corpus, delay time.Duration) *OfflineResponder {
	return &OfflineResponder{
		corpus:  c,
		delay:   delay,
		sleep:   time.Sleep,
		pickInt: rand.Intn,
	}
}

// Respond answers from local records first, then canned intents, then an
// acknowledgment echo.
func (r *OfflineResponder) Respond(message string) string {
	r.sleep(r.delay)

	if content, ok := r.corpus.ExactKeywordMatch(message); ok {
		return fmt.Sprintf("According to official records: %s (Offline Mode)", content)
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return "Hello! I am the Truth Engine assistant. How can I help you? (Offline Mode: remote AI services are unreachable.)"
	case strings.Contains(lower, "how are you"):
		return "I'm functioning perfectly! My local verification logic is running smoothly."
	case strings.Contains(lower, "help"):
		return "I can help you with general questions. Try asking about 'passport', 'emergency', or 'Feed Salone'."
	case strings.Contains(lower, "weather"):
		return "I can't check real-time weather yet, but it's always sunny in the digital world!"
	case strings.Contains(lower, "joke"):
		return offlineJokes[r.pickInt(len(offlineJokes))]
	default:
		return fmt.Sprintf("Interesting... You said '%s'. (Offline Mode: remote AI services returned an error or no API key is configured.)", message)
	}
}
