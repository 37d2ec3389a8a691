package types

// DocumentMetadata is the display projection stored alongside each document,
// so query results can be rendered without refetching the full profile.
type DocumentMetadata struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Location   string `json:"location,omitempty"`
	URL        string `json:"url,omitempty"`
}

// QueryResult is one retrieved document, ephemeral to a single query.
type QueryResult struct {
	ID         string           `json:"id"`
	Document   string           `json:"document"`
	Metadata   DocumentMetadata `json:"metadata"`
	Similarity float64          `json:"similarity"`
}

// AnalysisResult is the outcome of a retrieval-augmented candidate analysis.
// Exactly one of three shapes applies: NoMatches set (empty retrieval),
// Error set (generation failed), or Analysis populated.
type AnalysisResult struct {
	Analysis  string        `json:"analysis,omitempty"`
	Profiles  []QueryResult `json:"profiles,omitempty"`
	Query     string        `json:"query,omitempty"`
	NoMatches bool          `json:"no_matches,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// CandidateScore is one screened candidate with its generated score.
type CandidateScore struct {
	Metadata  DocumentMetadata `json:"metadata"`
	ScoreText string           `json:"score_text"`
	Score     float64          `json:"score,omitempty"`
	Scored    bool             `json:"scored"`
}

// ScreeningResult is the outcome of screening retrieved candidates
// against a query.
type ScreeningResult struct {
	Query      string           `json:"query"`
	Candidates []CandidateScore `json:"candidates"`
}
