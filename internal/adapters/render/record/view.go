package record

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// Render formats a coordination outcome for a terminal.
func Render(outcome domain.Outcome) (string, error) {
	return run(func(s styles) string { return renderOutcome(outcome, s) })
}

// RenderHistory formats stored partnership summaries, newest first.
func RenderHistory(entries []domain.HistoryEntry) (string, error) {
	return run(func(s styles) string { return renderHistory(entries, s) })
}

func renderOutcome(outcome domain.Outcome, s styles) string {
	switch {
	case !outcome.Success:
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Partnership failed"),
			s.failure.Render(outcome.Error),
		)
	case outcome.Halted && outcome.Halt != nil:
		return renderHalt(*outcome.Halt, s)
	case outcome.Record != nil:
		return renderRecord(*outcome.Record, s)
	default:
		return s.empty.Render("No partnership result.")
	}
}

func renderHalt(halt domain.HaltResult, s styles) string {
	lines := []string{
		s.title.Render("Partnership halted"),
		s.header.Render(fmt.Sprintf("session: %s", halt.SessionID)),
		s.warning.Render(fmt.Sprintf("severity: %s", halt.Severity)),
	}
	lines = append(lines, bulletSection("reasons", halt.Reasons, s)...)
	lines = append(lines, bulletSection("recommendations", halt.Recommendations, s)...)

	precedents := make([]string, 0, len(halt.Precedents))
	for _, p := range halt.Precedents {
		precedents = append(precedents, fmt.Sprintf("%s (session %s, %.0f%% similar)", p.Summary, p.SessionID, p.Similarity*100))
	}
	lines = append(lines, bulletSection("precedents", precedents, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.PartnershipRecord, s styles) string {
	lines := []string{
		s.title.Render("Partnership " + string(record.Mode)),
		s.header.Render(fmt.Sprintf("session: %s  id: %s", record.SessionID, record.ID)),
		s.detail.Render("task: " + record.RefinedPlan.Task),
		confidenceLine("initial", record.InitialConfidence, s),
		confidenceLine("final", record.FinalConfidence, s),
	}

	if m := record.Metrics.Standard; m != nil {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.label.Render("standard review"),
			s.detail.Render(fmt.Sprintf("questions: %d  refinements: %d  violations: %d", m.QuestionsRaised, m.RefinementsApplied, m.StandardsViolations+m.ApproachViolations)),
			s.detail.Render(fmt.Sprintf("strategic: %s  creative: %s  effectiveness: %.2f", yesNo(m.StrategicAnalysisRan), yesNo(m.CreativeSynthesisRan), m.EffectivenessScore)),
		)))
	}
	if record.Strategic != nil {
		lines = append(lines, s.detail.Render("verdict: "+string(record.Strategic.Recommendation.Verdict)))
	}

	if m := record.Metrics.Infinity; m != nil {
		section := []string{
			s.label.Render("infinity dialogue"),
			s.detail.Render(fmt.Sprintf("rounds: %d  ended: %s", m.RoundsCompleted, record.TerminationReason)),
		}
		for i, score := range record.ConsensusTrajectory {
			section = append(section, confidenceLine(fmt.Sprintf("round %d", i+1), score, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}

	lines = append(lines, bulletSection("refinements", record.RefinedPlan.Metadata.Refinements, s)...)
	lines = append(lines, bulletSection("conditions", record.RefinedPlan.Metadata.Conditions, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHistory(entries []domain.HistoryEntry, s styles) string {
	lines := []string{
		s.title.Render("Partnership history"),
		s.header.Render(fmt.Sprintf("records: %d", len(entries))),
	}
	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No partnerships recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, e := range entries {
		summary := fmt.Sprintf("%s  %-8s %.2f  %s", e.Timestamp.UTC().Format(time.DateTime), e.Mode, e.FinalConfidence, e.Task)
		if e.TerminationReason != "" {
			summary += "  [" + string(e.TerminationReason) + "]"
		}
		lines = append(lines, s.detail.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bulletSection(title string, items []string, s styles) []string {
	if len(items) == 0 {
		return nil
	}

	lines := []string{s.section.Render(s.label.Render(title))}
	for _, item := range items {
		lines = append(lines, s.detail.Render("- "+item))
	}
	return lines
}

func confidenceLine(label string, value float64, s styles) string {
	percent := clampPercent(value * 100)
	meta := lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100)).Render(fmt.Sprintf("%3.0f%%", percent))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.detail.Render(fmt.Sprintf("%-9s", label)),
		" ",
		renderProgressBar(percent, barWidth, s),
		" ",
		meta,
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}

// interpolateColor maps value onto the ANSI greyscale ramp, 240 at lo and
// 255 at hi.
func interpolateColor(value, lo, hi float64) lipgloss.Color {
	if hi == lo {
		return lipgloss.Color("255")
	}

	normalized := min(max((value-lo)/(hi-lo), 0), 1)
	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
