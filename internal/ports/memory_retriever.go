package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type MemoryRetriever interface {
	Retrieve(ctx context.Context, query string, opts domain.RetrieveOptions) (domain.MemoryResult, error)
}
