package application

import (
	"context"
	"fmt"

	"venueadmin/internal/domain/entities"
	"venueadmin/internal/ports/output"
)

type MetricsService struct {
	eventRepo output.EventRepository
}

func NewMetricsService(eventRepo output.EventRepository) *MetricsService {
	return &MetricsService{eventRepo: eventRepo}
}

// GetMetrics aggregates events and payments per currency. The overall
// totals are the sums of the groups, so they always reconcile with the
// per-currency breakdown.
func (s *MetricsService) GetMetrics(ctx context.Context) (*entities.Metrics, error) {
	groups, err := s.eventRepo.MetricsByCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics by currency: %w", err)
	}

	metrics := &entities.Metrics{ByCurrency: groups}
	for i := range groups {
		metrics.TotalEvents += groups[i].TotalEvents
		metrics.TotalGuests += groups[i].TotalGuests
	}
	return metrics, nil
}
