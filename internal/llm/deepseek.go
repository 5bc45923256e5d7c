package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// DeepSeekProvider is the primary provider. It talks to DeepSeek through
// the OpenRouter gateway, which speaks the OpenAI chat-completions
// envelope (choice list).
type DeepSeekProvider struct {
	client *openai.Client
	model  string
}

// attributionTransport adds the OpenRouter attribution headers to every
// request.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://govchat-sierraleone.gov.sl")
	req.Header.Set("X-Title", "Sierra Leone Truth Engine")
	return t.base.RoundTrip(req)
}

// NewDeepSeekProvider creates the DeepSeek provider.
func NewDeepSeekProvider(apiKey, model, baseURL string, timeout time.Duration) (*DeepSeekProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("DeepSeek API key is required")
	}
	if model == "" {
		model = "deepseek/deepseek-chat"
	}
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &attributionTransport{base: http.DefaultTransport},
	}

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Name returns the provider name
func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

// Chat sends the message through the chat-completions endpoint.
func (p *DeepSeekProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Message},
		},
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classify(p.Name(), err)
	}

	if len(resp.Choices) == 0 {
		return nil, &Failure{Provider: p.Name(), Kind: FailureEmpty, Err: fmt.Errorf("no choices in response")}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, &Failure{Provider: p.Name(), Kind: FailureEmpty, Err: fmt.Errorf("empty message content")}
	}

	return &ChatResponse{
		Text:       text,
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
