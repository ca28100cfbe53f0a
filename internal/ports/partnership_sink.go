package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

// PartnershipSink persists finished records. Callers treat failures as non-fatal.
type PartnershipSink interface {
	LogPartnership(ctx context.Context, record domain.PartnershipRecord) error
}
