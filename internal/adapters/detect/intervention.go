package detect

import (
	"context"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
)

// correctionPhrases are the user phrasings that signal the assistant went off
// track. Matching is case-insensitive and counts every occurrence.
var correctionPhrases = []string{
	"that's wrong",
	"that is wrong",
	"not what i asked",
	"not what i meant",
	"i already said",
	"i told you",
	"try again",
	"still broken",
	"still failing",
	"doesn't work",
	"does not work",
	"undo that",
	"revert that",
	"stop doing",
	"you broke",
}

type InterventionDetector struct {
	phrases []string
}

var _ ports.InterventionDetector = (*InterventionDetector)(nil)

func NewInterventionDetector() *InterventionDetector {
	return &InterventionDetector{phrases: correctionPhrases}
}

func (d *InterventionDetector) DetectInterventions(ctx context.Context, proposal domain.Proposal) (domain.InterventionCount, error) {
	if err := ctx.Err(); err != nil {
		return domain.InterventionCount{}, err
	}

	message := strings.ToLower(strings.ReplaceAll(proposal.UserMessage, "’", "'"))

	var result domain.InterventionCount
	for _, phrase := range d.phrases {
		n := strings.Count(message, phrase)
		if n == 0 {
			continue
		}
		result.InterventionCount += n
		result.Phrases = append(result.Phrases, phrase)
	}

	return result, nil
}
