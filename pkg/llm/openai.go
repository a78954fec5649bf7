package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a helpful assistant."

const (
	summarizePrompt = "Summarize the following text in 2-3 sentences:\n\n"
	keywordsPrompt  = "Extract the main keywords from the following text. Return them as a comma-separated list:\n\n"
	sentimentPrompt = "Classify the sentiment of the following text as Positive, Negative, or Neutral.\n\n"
)

const (
	summarizeTemperature = 0.7
	keywordsTemperature  = 0.5
	sentimentTemperature = 0.0
)

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	m := openai.ChatModelGPT3_5Turbo
	if model != "" {
		m = openai.ChatModel(model)
	}

	return &OpenAIClient{
		client: &client,
		model:  m,
	}
}

// complete issues one chat completion and returns the trimmed reply text.
// Failures are not retried; they surface to the caller as *ProviderError.
func (c *OpenAIClient) complete(ctx context.Context, op, userPrompt string, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return "", &ProviderError{Op: op, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Op: op, Err: errors.New("no choices in response")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, "summarize", summarizePrompt+text, summarizeTemperature)
}

func (c *OpenAIClient) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	raw, err := c.complete(ctx, "extract keywords", keywordsPrompt+text, keywordsTemperature)
	if err != nil {
		return nil, err
	}
	return parseKeywords(raw), nil
}

func (c *OpenAIClient) AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	raw, err := c.complete(ctx, "analyze sentiment", sentimentPrompt+text, sentimentTemperature)
	if err != nil {
		return "", err
	}
	return normalizeSentiment(raw), nil
}
