package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hydro-command/internal/domain/alert"

	"github.com/nats-io/nats.go"
)

type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes each alert to "<prefix>.alerts.<device_id>".
type NATSPublisher struct {
	conn   publisher
	prefix string
	close  func()
}

func ConnectNATS(url, prefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("hydro-command"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats %s: %w", url, err)
	}
	return &NATSPublisher{
		conn:   nc,
		prefix: prefix,
		close: func() {
			_ = nc.Drain()
			nc.Close()
		},
	}, nil
}

func NewNATSPublisher(conn publisher, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: prefix, close: func() {}}
}

func (p *NATSPublisher) Subject(deviceID string) string {
	return fmt.Sprintf("%s.alerts.%s", p.prefix, deviceID)
}

func (p *NATSPublisher) NotifyAlerts(_ context.Context, records []*alert.Record) error {
	for _, r := range records {
		payload, err := json.Marshal(NewAlertMessage(r))
		if err != nil {
			return fmt.Errorf("failed to encode alert %s: %w", r.ID(), err)
		}
		if err := p.conn.Publish(p.Subject(r.DeviceID()), payload); err != nil {
			return fmt.Errorf("failed to publish alert %s: %w", r.ID(), err)
		}
	}
	return nil
}

func (p *NATSPublisher) Close() {
	p.close()
}
