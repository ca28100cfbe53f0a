package domain

// MeshIntelligence is the upstream analysis snapshot. The coordinator only reads it.
type MeshIntelligence struct {
	Goals    []string `json:"goals,omitempty"`
	Domains  []string `json:"domains,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
	Insights []string `json:"insights,omitempty"`
}

type MissionContext struct {
	SessionID       string            `json:"sessionId"`
	UserMessage     string            `json:"userMessage"`
	ComplexityScore int               `json:"complexityScore"`
	Colonels        []string          `json:"colonels,omitempty"`
	Mesh            *MeshIntelligence `json:"meshIntelligence,omitempty"`
}
