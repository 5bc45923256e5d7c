package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/tecw/truthengine/internal/corpus"
	"github.com/tecw/truthengine/internal/llm"
	"github.com/tecw/truthengine/internal/model"
	"github.com/tecw/truthengine/internal/respond"
)

// keyFile is the file-based credential fallback checked when no
// provider environment variable is set.
const keyFile = "api_key.txt"

// loadConfig resolves the configuration hierarchy: flags > env
// (TRUTHENGINE_*) > config file > defaults.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("corpus.path"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := viper.GetDuration("providers.timeout"); v != 0 {
		cfg.Providers.Timeout = v
	}
	if v := viper.GetInt("providers.max_tokens"); v != 0 {
		cfg.Providers.MaxTokens = v
	}
	if v := viper.GetString("providers.deepseek_model"); v != "" {
		cfg.Providers.DeepSeekModel = v
	}
	if v := viper.GetString("providers.openai_model"); v != "" {
		cfg.Providers.OpenAIModel = v
	}
	if v := viper.GetString("providers.gemini_model"); v != "" {
		cfg.Providers.GeminiModel = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetFloat64("rate_limit.requests_per_second"); v != 0 {
		cfg.RateLimit.RequestsPerSecond = v
	}
	if v := viper.GetInt("concurrency.workers"); v != 0 {
		cfg.Concurrency.Workers = v
	}
	if viper.GetBool("output.verbose") {
		cfg.Output.Verbose = true
	}

	if cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".truthengine", "cache")
		} else {
			cfg.Cache.Dir = filepath.Join(os.TempDir(), "truthengine-cache")
		}
	}

	return cfg
}

// buildOrchestrator wires the full response path: corpus, provider
// chain, cache, rate limiter, offline fallback.
func buildOrchestrator(cfg *model.Config) *respond.Orchestrator {
	kb := corpus.Load(cfg.Corpus.Path, logger)

	creds := llm.LoadCredentials(keyFile)
	providers := llm.Chain(cfg.Providers, creds, logger)

	var cache respond.Cache
	if cfg.Cache.Enabled {
		cache = respond.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return respond.NewOrchestrator(respond.Options{
		Providers: providers,
		Corpus:    kb,
		Cache:     cache,
		Limiter:   respond.NewProviderLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		Timeout:   cfg.Providers.Timeout,
		MaxTokens: cfg.Providers.MaxTokens,
		Offline:   respond.OfflineOptions{Delay: cfg.Offline.Delay},
		Logger:    logger,
	})
}

// defaultRequestTimeout bounds a whole ask/verify invocation.
func defaultRequestTimeout(cfg *model.Config) time.Duration {
	// Room for every provider attempt plus the offline fallback delay
	return time.Duration(3)*cfg.Providers.Timeout + 10*time.Second
}
