package domain

import "time"

// HistoryEntry is the searchable summary of a stored partnership record.
type HistoryEntry struct {
	RecordID          string            `json:"recordId"`
	SessionID         string            `json:"sessionId"`
	Timestamp         time.Time         `json:"timestamp"`
	Mode              Mode              `json:"mode"`
	Task              string            `json:"task"`
	Keywords          []string          `json:"keywords,omitempty"`
	FinalConfidence   float64           `json:"finalConfidence"`
	TerminationReason TerminationReason `json:"terminationReason,omitempty"`
}

// HistoryQuery filters stored records. Zero values mean no filter; results
// are newest first.
type HistoryQuery struct {
	SessionID      string
	ExcludeSession string
	Limit          int
}

// Entry summarizes the record for history queries.
func (r PartnershipRecord) Entry() HistoryEntry {
	return HistoryEntry{
		RecordID:          r.ID,
		SessionID:         r.SessionID,
		Timestamp:         r.Timestamp,
		Mode:              r.Mode,
		Task:              r.RefinedPlan.Task,
		Keywords:          r.Keywords,
		FinalConfidence:   r.FinalConfidence,
		TerminationReason: r.TerminationReason,
	}
}
