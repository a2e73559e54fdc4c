package discord

import (
	"context"

	"emperror.dev/errors"
	"github.com/sashabaranov/go-openai"
)

// NewOpenAIClient builds the summary LLM client, or nil when no key is
// configured.
func NewOpenAIClient(apiKey, model string, maxTokens int, temperature float64) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
	}
}

// Enabled reports whether summaries can use the LLM at all.
func (o *OpenAIClient) Enabled() bool {
	return o != nil
}

// GenerateResponse asks the model for a completion of prompt.
func (o *OpenAIClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if o == nil {
		return "", errors.New("openai client is not configured")
	}

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   o.maxTokens,
			Temperature: o.temperature,
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
