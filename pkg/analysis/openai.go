package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIGenerator struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
	fallback  *TemplateEngine
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
		fallback:  NewTemplateEngine(),
	}
}

func (g *OpenAIGenerator) Name() string {
	return "openai"
}

func (g *OpenAIGenerator) Generate(ctx context.Context, input Input) (*Analysis, error) {
	result, err := g.generate(ctx, input)
	if err != nil {
		slog.Warn("openai analysis failed, using template", "error", err)
		return g.fallback.Generate(ctx, input)
	}
	return result, nil
}

func (g *OpenAIGenerator) generate(ctx context.Context, input Input) (*Analysis, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisSystemPrompt),
			openai.UserMessage(formatInput(input)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseAnalysis(cleanJSONResponse(resp.Choices[0].Message.Content), input, g.modelName)
}
