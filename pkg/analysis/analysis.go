package analysis

import (
	"context"

	"ainews/pkg/sources"
)

const (
	DepthStrategic     = "strategic"
	DepthTechnical     = "technical"
	DepthMarket        = "market"
	DepthComprehensive = "comprehensive"
)

// Input carries everything a generator needs about one search.
type Input struct {
	Query     string
	TimeFrame string
	Depth     string
	Records   []sources.Record
}

// Analysis is the narrative attached to a result set.
type Analysis struct {
	Summary         string
	KeyInsights     []string
	Recommendations []string
	Confidence      float64
	Depth           string
	ModelUsed       string
}

type Generator interface {
	Generate(ctx context.Context, input Input) (*Analysis, error)
	Name() string
}

// NewGenerator picks the narrative backend: Anthropic when its key is
// set, then OpenAI, then the built-in templates.
func NewGenerator(anthropicKey, openaiKey string) Generator {
	switch {
	case anthropicKey != "":
		return NewAnthropicGenerator(anthropicKey)
	case openaiKey != "":
		return NewOpenAIGenerator(openaiKey)
	default:
		return NewTemplateEngine()
	}
}

func normalizeDepth(depth string) string {
	switch depth {
	case DepthStrategic, DepthTechnical, DepthMarket, DepthComprehensive:
		return depth
	default:
		return DepthComprehensive
	}
}
