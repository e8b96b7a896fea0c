package input

import (
	"context"

	"venueadmin/internal/domain/entities"
)

type MetricsUseCase interface {
	GetMetrics(ctx context.Context) (*entities.Metrics, error)
}
