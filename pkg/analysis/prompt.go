package analysis

import (
	"fmt"
	"strings"
)

const maxRecordChars = 200

const analysisSystemPrompt = `You are an intelligence analyst. You will receive a topic, a time frame, a requested analysis depth (strategic, technical, market, or comprehensive), and a numbered list of search results with titles, summaries, and sources.

Write an analysis at the requested depth grounded ONLY in the provided results. Do not invent events, figures, or citations the results do not support. Keep the summary to 3-4 sentences.

Output as JSON only, no other text:
{
  "summary": "3-4 sentence analysis at the requested depth",
  "key_insights": ["2-4 short, concrete insights"],
  "recommendations": ["2-4 actionable recommendations"],
  "confidence": 0.0-1.0 how well the provided results cover the topic
}`

func formatInput(input Input) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Topic: %s\n", input.Query))
	sb.WriteString(fmt.Sprintf("Time frame: %s\n", input.TimeFrame))
	sb.WriteString(fmt.Sprintf("Requested depth: %s\n\n", normalizeDepth(input.Depth)))

	for i, r := range input.Records {
		sb.WriteString(fmt.Sprintf("[%d] Title: %s\n", i, r.Title))
		sb.WriteString(fmt.Sprintf("    Summary: %s\n", truncate(r.Description, maxRecordChars)))
		sb.WriteString(fmt.Sprintf("    Source: %s (%s)\n", r.Source, r.Type))
		if !r.PublishedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("    Published: %s\n", r.PublishedAt.Format("2006-01-02 15:04")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
