package bootstrap

import (
	"context"
	"log/slog"

	"hydro-command/internal/infra/mqtt"
	"hydro-command/internal/infra/notify"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewHub,
		NewAlertNotifier,
	),
	fx.Invoke(
		StartMQTTSubscriber,
	),
)

func NewHub(lc fx.Lifecycle) *notify.Hub {
	hub := notify.NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-hub.Done():
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return hub
}

// NewAlertNotifier always pushes to the websocket hub and also publishes to
// NATS when NATS_URL is set.
func NewAlertNotifier(lc fx.Lifecycle, cfg config.Config, hub *notify.Hub) (commands.AlertNotifier, error) {
	if cfg.NATS.URL == "" {
		return notify.NewFanout(hub), nil
	}

	pub, err := notify.ConnectNATS(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})
	slog.Info("alert publishing to nats enabled", "url", cfg.NATS.URL)
	return notify.NewFanout(hub, pub), nil
}

// StartMQTTSubscriber is a no-op unless MQTT_BROKER_URL is set.
func StartMQTTSubscriber(lc fx.Lifecycle, cfg config.Config, ingest commands.TelemetryCommands) {
	if cfg.MQTT.BrokerURL == "" {
		return
	}

	var sub *mqtt.Subscriber
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			client, err := mqtt.Connect(cfg.MQTT)
			if err != nil {
				return err
			}
			sub = mqtt.NewSubscriber(client, cfg.MQTT, ingest)
			return sub.Start()
		},
		OnStop: func(_ context.Context) error {
			if sub != nil {
				sub.Stop()
			}
			return nil
		},
	})
}
