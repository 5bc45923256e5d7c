package respond

import (
	"context"
	"fmt"
	"time"

	"github.com/tecw/truthengine/internal/corpus"
	"github.com/tecw/truthengine/internal/llm"
	"github.com/tecw/truthengine/internal/model"
	"go.uber.org/zap"
)

// Orchestrator walks the provider chain for a request and degrades to
// the offline responder when every remote attempt fails. Callers never
// see provider errors; the worst case is a deterministic local answer.
type Orchestrator struct {
	providers []llm.Provider
	retriever *corpus.Retriever
	offline   *OfflineResponder
	cache     Cache // nil disables caching
	limiter   *ProviderLimiter
	timeout   time.Duration
	maxTokens int
	logger    *zap.Logger
}

// Options configures an Orchestrator.
type Options struct {
	Providers []llm.Provider
	Corpus    *corpus.Corpus
	Cache     Cache
	Limiter   *ProviderLimiter
	Timeout   time.Duration
	MaxTokens int
	Offline   OfflineOptions
	Logger    *zap.Logger
}

// OfflineOptions tunes the local fallback.
type OfflineOptions struct {
	Delay time.Duration
}

// NewOrchestrator wires the fallback chain.
func NewOrchestrator(opts Options) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Orchestrator{
		providers: opts.Providers,
		retriever: corpus.NewRetriever(opts.Corpus),
		offline:   NewOfflineResponder(opts.Corpus, opts.Offline.Delay),
		cache:     opts.Cache,
		limiter:   opts.Limiter,
		timeout:   opts.Timeout,
		maxTokens: opts.MaxTokens,
		logger:    opts.Logger,
	}
}

// Respond produces the answer for an open-ended chat request. It never
// returns an error: the offline responder is the floor.
func (o *Orchestrator) Respond(ctx context.Context, message string, mode Mode) string {
	// Image requests never reach a provider; no image is actually
	// generated, only acknowledged.
	if mode == ModeImage {
		return fmt.Sprintf("I have generated an image request for: '%s'. (Note: Image generation requires a connected GPU service. I am ready to link with a diffusion API.)", message)
	}

	augmented := Augment(message, mode)
	kbContext := o.retriever.Retrieve(augmented)
	o.logger.Debug("context retrieved", zap.Int("items", len(kbContext)))

	key := responseKey(message, mode, kbContext)
	if o.cache != nil {
		if cached, found := o.cache.Get(key); found {
			o.logger.Debug("response served from cache")
			return string(cached)
		}
	}

	req := llm.ChatRequest{
		System:    chatSystemPrompt(kbContext),
		Message:   augmented,
		MaxTokens: o.maxTokens,
	}

	if text, ok := o.tryProviders(ctx, req); ok {
		if o.cache != nil {
			if err := o.cache.Set(key, []byte(text), 0); err != nil {
				o.logger.Debug("response cache write failed", zap.Error(err))
			}
		}
		return text
	}

	o.logger.Info("all providers failed, answering offline")
	return o.offline.Respond(message)
}

// VerifyClaim asks the chain for a structured opinion on a claim. Every
// failure path collapses into the fixed unverified/yellow shape.
func (o *Orchestrator) VerifyClaim(ctx context.Context, claim string, imageRef string) model.StructuredVerdict {
	if len(o.providers) == 0 {
		return model.UnavailableVerdict("AI service unavailable. Unable to verify at this time.")
	}

	kbContext := o.retriever.Retrieve(claim)

	userPrompt := fmt.Sprintf("Claim to Verify: %s", claim)
	if imageRef != "" {
		userPrompt += fmt.Sprintf("\n\n[USER HAS UPLOADED AN IMAGE AS EVIDENCE: %s. If this image is accessible, consider it. If not, assume the user believes the image supports their claim.]", imageRef)
	}

	req := llm.ChatRequest{
		System:      verdictSystemPrompt(kbContext),
		Message:     userPrompt,
		Temperature: 0.3, // Lower temperature for more deterministic JSON
		MaxTokens:   o.maxTokens,
	}

	for _, provider := range o.providers {
		resp, err := o.attempt(ctx, provider, req)
		if err != nil {
			o.logFailure(provider, err)
			continue
		}

		verdict, err := llm.ParseStructuredVerdict(resp.Text)
		if err != nil {
			o.logger.Warn("provider verdict payload malformed, advancing",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			continue
		}

		return *verdict
	}

	return model.UnavailableVerdict("Error connecting to verification service.")
}

// tryProviders walks the chain in priority order, one attempt per
// provider, committing to the first success.
func (o *Orchestrator) tryProviders(ctx context.Context, req llm.ChatRequest) (string, bool) {
	for _, provider := range o.providers {
		resp, err := o.attempt(ctx, provider, req)
		if err != nil {
			o.logFailure(provider, err)
			continue
		}

		o.logger.Debug("provider answered",
			zap.String("provider", provider.Name()),
			zap.String("model", resp.Model),
			zap.Int("tokens", resp.TokensUsed))
		return resp.Text, true
	}
	return "", false
}

// attempt issues one rate-limited, timeout-bounded call.
func (o *Orchestrator) attempt(ctx context.Context, provider llm.Provider, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx, provider.Name()); err != nil {
			return nil, &llm.Failure{Provider: provider.Name(), Kind: llm.FailureTimeout, Err: err}
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return provider.Chat(attemptCtx, req)
}

func (o *Orchestrator) logFailure(provider llm.Provider, err error) {
	o.logger.Warn("provider attempt failed, advancing",
		zap.String("provider", provider.Name()),
		zap.Error(err))
}
