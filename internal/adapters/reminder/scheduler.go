// Package reminder runs the periodic balance-reminder task: upcoming
// events that still owe money get a notification pushed through the
// Notifier port.
package reminder

import (
	"context"
	"log"
	"time"

	"venueadmin/internal/domain/entities"
	"venueadmin/internal/ports/output"
	"venueadmin/pkg/tz"
)

type eventSource interface {
	UnsettledBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error)
}

type Scheduler struct {
	events   eventSource
	notifier output.Notifier
	interval time.Duration
	window   int // days ahead
}

func NewScheduler(events eventSource, notifier output.Notifier, interval time.Duration, windowDays int) *Scheduler {
	return &Scheduler{
		events:   events,
		notifier: notifier,
		interval: interval,
		window:   windowDays,
	}
}

// Run loops until ctx is done, checking for unsettled upcoming events on
// every tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, time.Now().In(tz.BuenosAires))
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, s.window)

	events, err := s.events.UnsettledBetween(ctx, from, to)
	if err != nil {
		log.Printf("reminder: find unsettled events: %v", err)
		return
	}
	for i := range events {
		if err := s.notifier.BalanceReminder(ctx, &events[i]); err != nil {
			log.Printf("reminder: notify event %d: %v", events[i].ID, err)
		}
	}
}
