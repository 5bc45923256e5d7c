package llm

import (
	"github.com/tecw/truthengine/internal/model"
	"go.uber.org/zap"
)

// Chain builds the provider list in fixed priority order: deepseek
// (primary), openai (secondary), gemini (tertiary). A provider without a
// credential is skipped entirely, not attempted. An empty chain is valid
// and forces the orchestrator straight to the offline responder.
func Chain(cfg model.ProvidersConfig, creds Credentials, logger *zap.Logger) []Provider {
	var providers []Provider

	if creds.DeepSeek != "" {
		p, err := NewDeepSeekProvider(creds.DeepSeek, cfg.DeepSeekModel, cfg.DeepSeekBaseURL, cfg.Timeout)
		if err != nil {
			logger.Warn("deepseek provider unavailable", zap.Error(err))
		} else {
			providers = append(providers, p)
		}
	} else {
		logger.Debug("deepseek credential absent, provider skipped")
	}

	if creds.OpenAI != "" {
		p, err := NewOpenAIProvider(creds.OpenAI, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Timeout)
		if err != nil {
			logger.Warn("openai provider unavailable", zap.Error(err))
		} else {
			providers = append(providers, p)
		}
	} else {
		logger.Debug("openai credential absent, provider skipped")
	}

	if creds.Gemini != "" {
		p, err := NewGeminiProvider(creds.Gemini, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.Timeout)
		if err != nil {
			logger.Warn("gemini provider unavailable", zap.Error(err))
		} else {
			providers = append(providers, p)
		}
	} else {
		logger.Debug("gemini credential absent, provider skipped")
	}

	return providers
}
