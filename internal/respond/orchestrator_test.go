package respond

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecw/truthengine/internal/corpus"
	"github.com/tecw/truthengine/internal/llm"
	"github.com/tecw/truthengine/internal/model"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Text: f.text, Model: f.name + "-model"}, nil
}

func failure(name string, kind llm.FailureKind) error {
	return &llm.Failure{Provider: name, Kind: kind, Err: fmt.Errorf("simulated %s", kind)}
}

func newTestOrchestrator(providers ...llm.Provider) *Orchestrator {
	return NewOrchestrator(Options{
		Providers: providers,
		Corpus:    corpus.New(nil),
		Timeout:   time.Second,
	})
}

func TestRespond_FirstSuccessStopsTheChain(t *testing.T) {
	primary := &fakeProvider{name: "deepseek", text: "primary answer"}
	secondary := &fakeProvider{name: "openai", text: "secondary answer"}
	tertiary := &fakeProvider{name: "gemini", text: "tertiary answer"}

	o := newTestOrchestrator(primary, secondary, tertiary)

	answer := o.Respond(context.Background(), "is the bridge open", ModeChat)

	assert.Equal(t, "primary answer", answer)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
	assert.Equal(t, 0, tertiary.calls)
}

func TestRespond_FailureAdvancesToNextProvider(t *testing.T) {
	primary := &fakeProvider{name: "deepseek", err: failure("deepseek", llm.FailureTimeout)}
	secondary := &fakeProvider{name: "openai", text: "secondary answer"}

	o := newTestOrchestrator(primary, secondary)

	answer := o.Respond(context.Background(), "is the bridge open", ModeChat)

	assert.Equal(t, "secondary answer", answer)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestRespond_AllFailuresFallToOfflineAnswer(t *testing.T) {
	providers := []llm.Provider{
		&fakeProvider{name: "deepseek", err: failure("deepseek", llm.FailureTransport)},
		&fakeProvider{name: "openai", err: failure("openai", llm.FailureEmpty)},
		&fakeProvider{name: "gemini", err: failure("gemini", llm.FailureTimeout)},
	}

	o := newTestOrchestrator(providers...)
	o.offline.sleep = func(time.Duration) {}

	answer := o.Respond(context.Background(), "is the bridge open", ModeChat)

	assert.NotEmpty(t, answer)
	assert.Contains(t, answer, "Offline Mode")
	for _, p := range providers {
		assert.Equal(t, 1, p.(*fakeProvider).calls)
	}
}

func TestRespond_NoProvidersGoesStraightOffline(t *testing.T) {
	o := newTestOrchestrator()
	o.offline.sleep = func(time.Duration) {}

	answer := o.Respond(context.Background(), "hello", ModeChat)

	assert.Contains(t, answer, "Offline Mode")
}

func TestRespond_ImageModeNeverReachesProviders(t *testing.T) {
	primary := &fakeProvider{name: "deepseek", text: "should not be used"}
	o := newTestOrchestrator(primary)

	answer := o.Respond(context.Background(), "a map of Freetown", ModeImage)

	assert.Contains(t, answer, "I have generated an image request for: 'a map of Freetown'")
	assert.Equal(t, 0, primary.calls)
}

func TestRespond_CacheHitSkipsProviders(t *testing.T) {
	primary := &fakeProvider{name: "deepseek", text: "fresh answer"}
	o := NewOrchestrator(Options{
		Providers: []llm.Provider{primary},
		Corpus:    corpus.New(nil),
		Cache:     NewMemoryCache(time.Minute),
		Timeout:   time.Second,
	})

	first := o.Respond(context.Background(), "is the bridge open", ModeChat)
	second := o.Respond(context.Background(), "is the bridge open", ModeChat)

	assert.Equal(t, "fresh answer", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, primary.calls)
}

func TestRespond_ModeChangesThePrompt(t *testing.T) {
	var seen llm.ChatRequest
	capture := &captureProvider{text: "ok", seen: &seen}
	o := newTestOrchestrator(capture)

	o.Respond(context.Background(), "compare rice prices", ModeShopping)

	assert.Contains(t, seen.Message, "[SHOPPING ASSISTANT]")
	assert.Contains(t, seen.Message, "User Query: compare rice prices")
}

type captureProvider struct {
	text string
	seen *llm.ChatRequest
}

func (c *captureProvider) Name() string { return "capture" }

func (c *captureProvider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	*c.seen = req
	return &llm.ChatResponse{Text: c.text}, nil
}

func TestVerifyClaim_EmptyChainIsUnavailable(t *testing.T) {
	o := newTestOrchestrator()

	verdict := o.VerifyClaim(context.Background(), "schools closed tomorrow", "")

	assert.Equal(t, "unverified", verdict.Status)
	assert.Equal(t, "yellow", verdict.Color)
	assert.Equal(t, "AI service unavailable. Unable to verify at this time.", verdict.Message)
}

func TestVerifyClaim_ParsesFencedPayload(t *testing.T) {
	primary := &fakeProvider{
		name: "deepseek",
		text: "```json\n{\"status\": \"false\", \"color\": \"red\", \"message\": \"Known scam.\", \"official_source\": \"https://statehouse.gov.sl\"}\n```",
	}

	o := newTestOrchestrator(primary)

	verdict := o.VerifyClaim(context.Background(), "government giving money", "")

	assert.Equal(t, "false", verdict.Status)
	assert.Equal(t, "red", verdict.Color)
	assert.Equal(t, "Known scam.", verdict.Message)
	require.NotNil(t, verdict.OfficialSource)
	assert.Equal(t, "https://statehouse.gov.sl", *verdict.OfficialSource)
}

func TestVerifyClaim_MalformedPayloadAdvances(t *testing.T) {
	primary := &fakeProvider{name: "deepseek", text: "I think it is probably false."}
	secondary := &fakeProvider{name: "openai", text: `{"status": "true", "message": "Confirmed."}`}

	o := newTestOrchestrator(primary, secondary)

	verdict := o.VerifyClaim(context.Background(), "president at UN", "")

	assert.Equal(t, "true", verdict.Status)
	assert.Equal(t, "green", verdict.Color)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestVerifyClaim_AllFailuresCollapseToFixedShape(t *testing.T) {
	o := newTestOrchestrator(
		&fakeProvider{name: "deepseek", err: failure("deepseek", llm.FailureTransport)},
		&fakeProvider{name: "openai", text: "not json either"},
	)

	verdict := o.VerifyClaim(context.Background(), "anything", "")

	assert.Equal(t, model.UnavailableVerdict("Error connecting to verification service."), verdict)
}

func TestVerifyClaim_ImageReferenceReachesThePrompt(t *testing.T) {
	var seen llm.ChatRequest
	capture := &captureProvider{
		text: `{"status": "unverified", "message": "Cannot confirm."}`,
		seen: &seen,
	}
	o := newTestOrchestrator(capture)

	o.VerifyClaim(context.Background(), "payment screenshot is real", "upload-123.jpg")

	assert.Contains(t, seen.Message, "Claim to Verify: payment screenshot is real")
	assert.Contains(t, seen.Message, "upload-123.jpg")
}
