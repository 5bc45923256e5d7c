package model

import "time"

// Config is the full runtime configuration tree
type Config struct {
	Corpus      CorpusConfig      `yaml:"corpus"`
	Providers   ProvidersConfig   `yaml:"providers"`
	Cache       CacheConfig       `yaml:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Offline     OfflineConfig     `yaml:"offline"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// CorpusConfig locates the knowledge corpus
type CorpusConfig struct {
	Path string `yaml:"path"`
}

// ProvidersConfig controls the remote provider chain. Order is fixed:
// deepseek (primary), openai (secondary), gemini (tertiary).
type ProvidersConfig struct {
	Timeout       time.Duration `yaml:"timeout"` // One uniform per-attempt timeout
	MaxTokens     int           `yaml:"max_tokens"`
	DeepSeekModel string        `yaml:"deepseek_model"`
	OpenAIModel   string        `yaml:"openai_model"`
	GeminiModel   string        `yaml:"gemini_model"`

	// Base URLs are overridable for testing and self-hosted gateways
	DeepSeekBaseURL string `yaml:"deepseek_base_url"`
	OpenAIBaseURL   string `yaml:"openai_base_url"`
	GeminiBaseURL   string `yaml:"gemini_base_url"`
}

// CacheConfig controls the response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateLimitConfig throttles outbound provider calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OfflineConfig tunes the local fallback responder
type OfflineConfig struct {
	// Delay applied before an offline answer so the response does not
	// return suspiciously faster than a real remote call
	Delay time.Duration `yaml:"delay"`
}

// ConcurrencyConfig controls batch verification
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls diagnostics
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path: "data/knowledge_base.json",
		},
		Providers: ProvidersConfig{
			Timeout:       30 * time.Second,
			MaxTokens:     500,
			DeepSeekModel: "deepseek/deepseek-chat",
			OpenAIModel:   "gpt-4o-mini",
			GeminiModel:   "gemini-1.5-flash",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.truthengine/cache at startup
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Offline: OfflineConfig{
			Delay: 500 * time.Millisecond,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
