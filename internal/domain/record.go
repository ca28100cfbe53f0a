package domain

import "time"

type Mode string

const (
	ModeStandard Mode = "standard"
	ModeInfinity Mode = "infinity"
)

type TerminationReason string

const (
	TerminationConsensusAchieved  TerminationReason = "consensus_achieved"
	TerminationDiminishingReturns TerminationReason = "diminishing_returns"
	TerminationMaxRounds          TerminationReason = "max_rounds_reached"
	TerminationCancelled          TerminationReason = "cancelled"
)

type ChallengeType string

const (
	ChallengeReframe      ChallengeType = "reframe"
	ChallengePatternMatch ChallengeType = "pattern_match"
	ChallengeOpenQuestion ChallengeType = "open_question"
)

type Acknowledgement string

const (
	AcknowledgeReframe       Acknowledgement = "reframe"
	AcknowledgeBuildOnMemory Acknowledgement = "build_on_memory"
	AcknowledgePivot         Acknowledgement = "pivot"
)

type Challenge struct {
	Type            ChallengeType `json:"type"`
	Question        string        `json:"question"`
	Precedent       *MemoryData   `json:"precedent,omitempty"`
	PivotSuggestion string        `json:"pivotSuggestion,omitempty"`
}

type ChallengeResponse struct {
	Acknowledges     Acknowledgement `json:"acknowledges"`
	ChangesApplied   []string        `json:"changesApplied"`
	ConfidenceBefore float64         `json:"confidenceBefore"`
	ConfidenceAfter  float64         `json:"confidenceAfter"`
}

type DialogueRound struct {
	Round           int               `json:"round"`
	Challenge       Challenge         `json:"challenge"`
	Response        ChallengeResponse `json:"response"`
	ConsensusBefore float64           `json:"consensusBefore"`
	ConsensusAfter  float64           `json:"consensusAfter"`
	Delta           float64           `json:"delta"`
}

type StandardMetrics struct {
	QuestionsRaised      int     `json:"questionsRaised"`
	RefinementsApplied   int     `json:"refinementsApplied"`
	StrategicAnalysisRan bool    `json:"strategicAnalysisRan"`
	CreativeSynthesisRan bool    `json:"creativeSynthesisRan"`
	StandardsViolations  int     `json:"standardsViolations"`
	ApproachViolations   int     `json:"approachViolations"`
	ConfidenceDelta      float64 `json:"confidenceDelta"`
	EffectivenessScore   float64 `json:"effectivenessScore"`
}

type InfinityMetrics struct {
	RoundsCompleted      int     `json:"roundsCompleted"`
	InitialConsensus     float64 `json:"initialConsensus"`
	FinalConsensus       float64 `json:"finalConsensus"`
	ConsensusImprovement float64 `json:"consensusImprovement"`
	AverageDelta         float64 `json:"averageDelta"`
}

type PartnershipMetrics struct {
	Standard *StandardMetrics `json:"standard,omitempty"`
	Infinity *InfinityMetrics `json:"infinity,omitempty"`
}

// PartnershipRecord is produced once per coordination call and not touched after return.
type PartnershipRecord struct {
	ID                string             `json:"id"`
	Timestamp         time.Time          `json:"timestamp"`
	SessionID         string             `json:"sessionId"`
	Mode              Mode               `json:"mode"`
	InitialConfidence float64            `json:"initialConfidence"`
	FinalConfidence   float64            `json:"finalConfidence"`
	RefinedPlan       Plan               `json:"refinedPlan"`
	Metrics           PartnershipMetrics `json:"partnershipMetrics"`
	Keywords          []string           `json:"keywords,omitempty"`

	Dialogue        *DialogueAnalysis  `json:"dialogue,omitempty"`
	Strategic       *StrategicAnalysis `json:"strategic,omitempty"`
	Creative        *CreativeSynthesis `json:"creative,omitempty"`
	StandardsReview *StandardsReport   `json:"standardsReview,omitempty"`
	ApproachReview  *StandardsReport   `json:"approachReview,omitempty"`

	Rounds              []DialogueRound   `json:"dialogueRounds,omitempty"`
	ConsensusTrajectory []float64         `json:"consensusTrajectory,omitempty"`
	ConfidenceHistory   []float64         `json:"confidenceHistory,omitempty"`
	PivotPoints         []int             `json:"pivotPoints,omitempty"`
	TerminationReason   TerminationReason `json:"terminationReason,omitempty"`
}

type HaltResult struct {
	SessionID       string               `json:"sessionId"`
	Timestamp       time.Time            `json:"timestamp"`
	Severity        Severity             `json:"severity"`
	Reasons         []string             `json:"reasons,omitempty"`
	Recommendations []string             `json:"recommendations,omitempty"`
	Precedents      []Precedent          `json:"precedents,omitempty"`
	Detection       ErrorDetectionResult `json:"errorDetection"`
}

// Outcome is the envelope returned by a coordination call. Exactly one of
// Record, Halt or Error is set.
type Outcome struct {
	Success bool               `json:"success"`
	Halted  bool               `json:"halted,omitempty"`
	Record  *PartnershipRecord `json:"record,omitempty"`
	Halt    *HaltResult        `json:"halt,omitempty"`
	Error   string             `json:"error,omitempty"`
}
