package handler

type AnalyzeRequest struct {
	Query         string `json:"query"`
	TimeFrame     string `json:"timeFrame"`
	AnalysisDepth string `json:"analysisDepth"`
	Region        string `json:"region"`
}

type RecordResponse struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	PublishedAt    string  `json:"publishedAt"`
	Source         string  `json:"source"`
	Type           string  `json:"type"`
	RelevanceScore float64 `json:"relevanceScore"`
}

type ResultSetResponse struct {
	Results     []RecordResponse `json:"results"`
	TotalFound  int              `json:"totalFound"`
	SearchQuery string           `json:"searchQuery"`
	TimeFrame   string           `json:"timeFrame"`
	Timestamp   string           `json:"timestamp"`
}

type AnalysisResponse struct {
	Summary         string   `json:"summary"`
	KeyInsights     []string `json:"keyInsights"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
	Depth           string   `json:"depth"`
}

type AnalyzeResponse struct {
	Query       string            `json:"query"`
	TimeFrame   string            `json:"timeFrame"`
	Results     ResultSetResponse `json:"results"`
	Analysis    AnalysisResponse  `json:"analysis"`
	GeneratedAt string            `json:"generatedAt"`
}

type TrendingTopicResponse struct {
	Topic    string          `json:"topic"`
	Count    int             `json:"count"`
	TopStory *RecordResponse `json:"topStory"`
}

type TrendingResponse struct {
	Topics      []TrendingTopicResponse `json:"topics"`
	GeneratedAt string                  `json:"generatedAt"`
}
