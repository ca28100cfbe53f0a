package detect

import (
	"context"
	"fmt"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
)

// SignatureDetectedThreshold is the keyword overlap at which a signature
// counts as detected.
const SignatureDetectedThreshold = 0.6

// SignatureSource lists the known failure signatures.
type SignatureSource interface {
	List(ctx context.Context) ([]domain.Signature, error)
}

type SignatureDetector struct {
	source SignatureSource
}

var _ ports.SignatureDetector = (*SignatureDetector)(nil)

func NewSignatureDetector(source SignatureSource) *SignatureDetector {
	return &SignatureDetector{source: source}
}

// DetectSignature reports the best-matching signature. MatchPercentage is the
// fraction of that signature's keywords present in the proposal, in [0,1].
func (d *SignatureDetector) DetectSignature(ctx context.Context, proposal domain.Proposal) (domain.SignatureMatch, error) {
	signatures, err := d.source.List(ctx)
	if err != nil {
		return domain.SignatureMatch{}, fmt.Errorf("list signatures: %w", err)
	}

	terms := proposalTerms(proposal)

	var best domain.SignatureMatch
	for _, sig := range signatures {
		score := keywords.Overlap(terms, sig.Keywords)
		if score > best.MatchPercentage {
			best.MatchPercentage = score
			best.Signature = sig.Name
		}
	}

	best.Detected = best.MatchPercentage >= SignatureDetectedThreshold
	if !best.Detected {
		best.Signature = ""
	}

	return best, nil
}

// proposalTerms widens the extracted keywords with plain words from the
// description and approach, which camel-case extraction skips.
func proposalTerms(proposal domain.Proposal) []string {
	terms := make([]string, 0, len(proposal.Keywords)+16)
	terms = append(terms, proposal.Keywords...)
	terms = append(terms, keywords.MessageWords(proposal.Description)...)
	terms = append(terms, keywords.MessageWords(proposal.Approach)...)
	terms = append(terms, keywords.MessageWords(proposal.UserMessage)...)

	return terms
}
