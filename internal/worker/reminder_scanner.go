// Package worker holds the background reminder scanner that turns
// due-soon reminders into AMQP notifications.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fintrack/internal/core"
)

// ReminderSource is the slice of the ledger the scanner reads.
type ReminderSource interface {
	Reminders() []core.Reminder
}

// DuePublisher sends one notification per due reminder.
type DuePublisher interface {
	PublishReminderDue(ctx context.Context, reminder core.Reminder, now time.Time) error
}

// ReminderScanner periodically walks the reminder collection and
// publishes a notification for every incomplete reminder inside the
// due-soon window. Each reminder is announced once per due date;
// editing the due date re-arms it.
type ReminderScanner struct {
	source    ReminderSource
	publisher DuePublisher
	limit     int
	now       func() time.Time

	announced map[string]time.Time // reminder ID -> due date already published
}

func NewReminderScanner(source ReminderSource, publisher DuePublisher, limit int) *ReminderScanner {
	if limit < 1 {
		limit = 1
	}
	return &ReminderScanner{
		source:    source,
		publisher: publisher,
		limit:     limit,
		now:       time.Now,
		announced: make(map[string]time.Time),
	}
}

// Scan publishes notifications for due reminders not yet announced.
// Publish failures leave the reminder un-announced so the next scan
// retries it.
func (s *ReminderScanner) Scan(ctx context.Context) (int, error) {
	now := s.now()

	due := make([]core.Reminder, 0)
	for _, r := range s.source.Reminders() {
		if r.Completed {
			continue
		}
		if !r.IsDueSoon(now) && !r.IsOverdue(now) {
			continue
		}
		if prev, ok := s.announced[r.ID]; ok && prev.Equal(r.DueDate) {
			continue
		}
		due = append(due, r)
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})
	if len(due) > s.limit {
		due = due[:s.limit]
	}

	published := 0
	var firstErr error
	for _, r := range due {
		if err := s.publisher.PublishReminderDue(ctx, r, now); err != nil {
			slog.ErrorContext(ctx, "Failed to publish reminder due message",
				"reminder_id", r.ID,
				"error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("publish reminder %s: %w", r.ID, err)
			}
			continue
		}
		s.announced[r.ID] = r.DueDate
		published++
	}

	if published > 0 {
		slog.InfoContext(ctx, "Reminder scan completed",
			"candidates", len(due),
			"published", published)
	}
	return published, firstErr
}

// Run scans on the given interval until ctx is done. Scan errors are
// logged inside Scan and do not stop the loop.
func (s *ReminderScanner) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "Reminder scanner started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Reminder scanner stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			s.Scan(ctx)
		}
	}
}
