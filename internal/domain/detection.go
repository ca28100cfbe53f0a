package domain

// Proposal is what the error detectors inspect before any analysis phase runs.
type Proposal struct {
	SessionID   string   `json:"sessionId"`
	Description string   `json:"description"`
	UserMessage string   `json:"userMessage,omitempty"`
	Keywords    []string `json:"keywords"`
	Approach    string   `json:"approach,omitempty"`
}

type SignatureMatch struct {
	Detected        bool    `json:"detected"`
	MatchPercentage float64 `json:"matchPercentage"`
	Signature       string  `json:"signature,omitempty"`
}

type IterationCount struct {
	IterationCount int `json:"iterationCount"`
}

type Precedent struct {
	RecordID   string  `json:"recordId,omitempty"`
	SessionID  string  `json:"sessionId"`
	Summary    string  `json:"summary"`
	Similarity float64 `json:"similarity"`
}

type PrecedentMatch struct {
	Found      bool        `json:"found"`
	Precedents []Precedent `json:"precedents,omitempty"`
}

type InterventionCount struct {
	InterventionCount int      `json:"interventionCount"`
	Phrases           []string `json:"phrases,omitempty"`
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DetectionSignals holds whichever detector results were produced; a nil field
// means the detector was absent or failed.
type DetectionSignals struct {
	Signature     *SignatureMatch    `json:"signature,omitempty"`
	Iterations    *IterationCount    `json:"iterations,omitempty"`
	Precedents    *PrecedentMatch    `json:"precedents,omitempty"`
	Interventions *InterventionCount `json:"interventions,omitempty"`
}

type HaltDecision struct {
	ShouldHalt      bool        `json:"shouldHalt"`
	Severity        Severity    `json:"severity"`
	Reasons         []string    `json:"reasons,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
	Precedents      []Precedent `json:"precedents,omitempty"`
}

type ErrorDetectionResult struct {
	Proposal        Proposal         `json:"proposal"`
	Signals         DetectionSignals `json:"signals"`
	Decision        HaltDecision     `json:"decision"`
	FailedDetectors []string         `json:"failedDetectors,omitempty"`
}

// Signature is a known failure pattern the signature detector matches
// proposals against.
type Signature struct {
	Name           string   `json:"name" toml:"name"`
	Description    string   `json:"description,omitempty" toml:"description,omitempty"`
	Keywords       []string `json:"keywords" toml:"keywords"`
	Recommendation string   `json:"recommendation,omitempty" toml:"recommendation,omitempty"`
}
