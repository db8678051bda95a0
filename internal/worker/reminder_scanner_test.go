package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
)

type stubSource struct {
	reminders []core.Reminder
}

func (s *stubSource) Reminders() []core.Reminder { return s.reminders }

type capturePublisher struct {
	published []core.Reminder
	fail      bool
}

func (p *capturePublisher) PublishReminderDue(_ context.Context, r core.Reminder, _ time.Time) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.published = append(p.published, r)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScanPublishesDueReminders(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	dueSoon := core.NewReminder("rent", 1800, now.Add(48*time.Hour), core.RemindRent)
	overdue := core.NewReminder("power", 90, now.Add(-24*time.Hour), core.RemindBill)
	farOut := core.NewReminder("tuition", 5000, now.Add(30*24*time.Hour), core.RemindTuition)
	done := core.NewReminder("paid already", 10, now.Add(time.Hour), core.RemindOther)
	done.Completed = true

	source := &stubSource{reminders: []core.Reminder{dueSoon, overdue, farOut, done}}
	pub := &capturePublisher{}
	scanner := NewReminderScanner(source, pub, 100)
	scanner.now = fixedClock(now)

	n, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if n != 2 || len(pub.published) != 2 {
		t.Fatalf("published %d (%d captured), want 2", n, len(pub.published))
	}
	// Earliest due date first.
	if pub.published[0].ID != overdue.ID || pub.published[1].ID != dueSoon.ID {
		t.Fatalf("publish order = %v, %v", pub.published[0].Title, pub.published[1].Title)
	}
}

func TestScanAnnouncesOncePerDueDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	r := core.NewReminder("rent", 1800, now.Add(48*time.Hour), core.RemindRent)

	source := &stubSource{reminders: []core.Reminder{r}}
	pub := &capturePublisher{}
	scanner := NewReminderScanner(source, pub, 100)
	scanner.now = fixedClock(now)

	scanner.Scan(context.Background())
	if n, _ := scanner.Scan(context.Background()); n != 0 {
		t.Fatalf("second scan published %d, want 0", n)
	}

	// Pushing the due date out and back in re-arms the reminder.
	r.DueDate = now.Add(72 * time.Hour)
	source.reminders = []core.Reminder{r}
	if n, _ := scanner.Scan(context.Background()); n != 1 {
		t.Fatal("edited due date was not re-announced")
	}
}

func TestScanRetriesOnPublishFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	r := core.NewReminder("rent", 1800, now.Add(time.Hour), core.RemindRent)

	source := &stubSource{reminders: []core.Reminder{r}}
	pub := &capturePublisher{fail: true}
	scanner := NewReminderScanner(source, pub, 100)
	scanner.now = fixedClock(now)

	if n, err := scanner.Scan(context.Background()); n != 0 || err == nil {
		t.Fatalf("Scan = %d, %v; want 0 and error", n, err)
	}

	// The failed reminder stays eligible.
	pub.fail = false
	if n, _ := scanner.Scan(context.Background()); n != 1 {
		t.Fatal("failed publish was not retried")
	}
}

func TestScanHonorsLimit(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	source := &stubSource{}
	for i := 0; i < 5; i++ {
		source.reminders = append(source.reminders,
			core.NewReminder("bill", 10, now.Add(time.Duration(i)*time.Hour), core.RemindBill))
	}

	pub := &capturePublisher{}
	scanner := NewReminderScanner(source, pub, 3)
	scanner.now = fixedClock(now)

	if n, _ := scanner.Scan(context.Background()); n != 3 {
		t.Fatalf("published %d, want limit 3", n)
	}
}
