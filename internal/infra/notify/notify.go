package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hydro-command/internal/domain/alert"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// AlertMessage is the wire form of an alert sent to subscribers.
type AlertMessage struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Parameter string    `json:"parameter"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

func NewAlertMessage(r *alert.Record) AlertMessage {
	return AlertMessage{
		ID:        r.ID(),
		DeviceID:  r.DeviceID(),
		Parameter: r.Parameter(),
		Message:   r.Message(),
		Severity:  r.Severity().String(),
		Timestamp: r.Timestamp(),
	}
}

type Notifier interface {
	NotifyAlerts(ctx context.Context, records []*alert.Record) error
}

// Fanout delivers to every notifier and joins their errors.
type Fanout struct {
	notifiers []Notifier
}

func NewFanout(notifiers ...Notifier) *Fanout {
	live := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			live = append(live, n)
		}
	}
	return &Fanout{notifiers: live}
}

func (f *Fanout) NotifyAlerts(ctx context.Context, records []*alert.Record) error {
	if len(records) == 0 {
		return nil
	}
	var errs []error
	for _, n := range f.notifiers {
		if err := n.NotifyAlerts(ctx, records); err != nil {
			slog.WarnContext(ctx, "alert notifier failed", "notifier", fmt.Sprintf("%T", n), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
