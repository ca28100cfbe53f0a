package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type StandardsEnforcer interface {
	EnforceCodeStandards(ctx context.Context, req domain.StandardsRequest) (domain.StandardsReport, error)
	IsOperational() bool
}
