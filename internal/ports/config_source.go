package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type ConfigSource interface {
	LoadInfinityConfig(ctx context.Context) (domain.InfinityConfig, error)
}
