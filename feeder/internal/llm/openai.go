package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

var errNoChoices = errors.New("no choices returned")

// OpenAIBackend answers descriptor prompts through the Chat Completions
// API using a vision-capable model (e.g. gpt-4o-mini).
type OpenAIBackend struct {
	client openai.Client
	model  string
}

func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (b *OpenAIBackend) Ask(ctx context.Context, kind PromptKind, imageDataURL string) (string, error) {
	completion, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: b.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
							{OfText: &openai.ChatCompletionContentPartTextParam{Text: kind.prompt()}},
							{OfImageURL: &openai.ChatCompletionContentPartImageParam{
								ImageURL: openai.ChatCompletionContentPartImageImageURLParam{URL: imageDataURL},
							}},
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", apperror.New(apperror.LlmUpstream, "OpenAIBackend.Ask", err)
	}

	if len(completion.Choices) == 0 {
		return "", apperror.New(apperror.LlmEmpty, "OpenAIBackend.Ask", errNoChoices)
	}

	text := completion.Choices[0].Message.Content
	if text == "" {
		return "", apperror.New(apperror.LlmEmpty, "OpenAIBackend.Ask", errNoChoices)
	}
	return text, nil
}
