package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecw/truthengine/internal/model"
	"go.uber.org/zap"
)

func TestChain_FixedPriorityOrder(t *testing.T) {
	cfg := model.DefaultConfig().Providers

	providers := Chain(cfg, Credentials{
		DeepSeek: "sk-or-a",
		OpenAI:   "sk-b",
		Gemini:   "AIza-c",
	}, zap.NewNop())

	require.Len(t, providers, 3)
	assert.Equal(t, "deepseek", providers[0].Name())
	assert.Equal(t, "openai", providers[1].Name())
	assert.Equal(t, "gemini", providers[2].Name())
}

func TestChain_SkipsUncredentialed(t *testing.T) {
	cfg := model.DefaultConfig().Providers

	providers := Chain(cfg, Credentials{OpenAI: "sk-b"}, zap.NewNop())

	require.Len(t, providers, 1)
	assert.Equal(t, "openai", providers[0].Name())
}

func TestChain_EmptyWithoutCredentials(t *testing.T) {
	cfg := model.DefaultConfig().Providers

	assert.Empty(t, Chain(cfg, Credentials{}, zap.NewNop()))
}
