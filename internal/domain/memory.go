package domain

type RetrieveOptions struct {
	Keywords       []string
	ExcludeSession string
	Limit          int
}

type MemoryData struct {
	RecordID  string `json:"recordId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type MemoryEnrichment struct {
	RecencyScore float64 `json:"recencyScore"`
}

type MemoryResult struct {
	Found      bool              `json:"found"`
	TierUsed   int               `json:"tierUsed,omitempty"`
	Data       MemoryData        `json:"data"`
	Enrichment *MemoryEnrichment `json:"enrichment,omitempty"`
}

// Consensus is the breakdown behind a single consensus score.
type Consensus struct {
	UserProfileAlignment  float64 `json:"userProfileAlignment"`
	TemporalBehavioralFit float64 `json:"temporalBehavioralFit"`
	MemoryPatternScore    float64 `json:"memoryPatternScore"`
	MeshAlignmentBonus    float64 `json:"meshAlignmentBonus"`
	Score                 float64 `json:"score"`
}
