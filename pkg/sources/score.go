package sources

import "strings"

// Score is a term-frequency relevance measure in [0, 1]: the query is
// split into lowercase whitespace tokens, each token's literal substring
// occurrences in text are summed, and the sum is averaged over the token
// count. An empty query scores 0.
func Score(text, query string) float64 {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return 0
	}

	lower := strings.ToLower(text)

	total := 0
	for _, token := range tokens {
		total += strings.Count(lower, token)
	}

	score := float64(total) / float64(len(tokens))
	if score > 1.0 {
		score = 1.0
	}

	return score
}
