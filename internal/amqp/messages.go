package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// ReminderDueMessage notifies downstream consumers that a payment
// reminder has entered its due-soon window or gone overdue. The worker
// that consumes it decides how to alert.
type ReminderDueMessage struct {
	ReminderID string    `json:"reminderId"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"dueDate"`
	Type       string    `json:"type"`
	Overdue    bool      `json:"overdue"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewReminderDueMessage builds a message from the reminder's state at
// scan time.
func NewReminderDueMessage(r core.Reminder, now time.Time) *ReminderDueMessage {
	return &ReminderDueMessage{
		ReminderID: r.ID,
		Title:      r.Title,
		Amount:     r.Amount,
		DueDate:    r.DueDate,
		Type:       r.Type.String(),
		Overdue:    r.IsOverdue(now),
		Timestamp:  now,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReminderDueMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReminderDueMessageFromJSON creates a message from JSON bytes
func ReminderDueMessageFromJSON(data []byte) (*ReminderDueMessage, error) {
	var msg ReminderDueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
