package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicGenerator struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
	fallback  *TemplateEngine
}

func NewAnthropicGenerator(apiKey string) *AnthropicGenerator {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGenerator{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
		fallback:  NewTemplateEngine(),
	}
}

func (g *AnthropicGenerator) Name() string {
	return "anthropic"
}

// Generate asks the model for the analysis and hands off to the
// template engine when the call or the parse fails, so the request
// never fails on narrative generation.
func (g *AnthropicGenerator) Generate(ctx context.Context, input Input) (*Analysis, error) {
	result, err := g.generate(ctx, input)
	if err != nil {
		slog.Warn("anthropic analysis failed, using template", "error", err)
		return g.fallback.Generate(ctx, input)
	}
	return result, nil
}

func (g *AnthropicGenerator) generate(ctx context.Context, input Input) (*Analysis, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(formatInput(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	return parseAnalysis(cleanJSONResponse(resp.Content[0].Text), input, g.modelName)
}

func parseAnalysis(content string, input Input, modelName string) (*Analysis, error) {
	var parsed struct {
		Summary         string   `json:"summary"`
		KeyInsights     []string `json:"key_insights"`
		Recommendations []string `json:"recommendations"`
		Confidence      float64  `json:"confidence"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	conf := parsed.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	return &Analysis{
		Summary:         parsed.Summary,
		KeyInsights:     parsed.KeyInsights,
		Recommendations: parsed.Recommendations,
		Confidence:      conf,
		Depth:           normalizeDepth(input.Depth),
		ModelUsed:       modelName,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
