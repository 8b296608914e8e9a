package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"

	paho "github.com/eclipse/paho.mqtt.golang"
)

var ErrInvalidTopic = errs.New("mqtt topic does not carry a device id")

const disconnectQuiesce = 250 // ms

// TelemetryPayload is the JSON body devices publish on hydro/<device>/telemetry.
// Field names match the HTTP ingest body.
type TelemetryPayload struct {
	Timestamp        *time.Time `json:"timestamp"`
	Temperature      *float64   `json:"room_temp"`
	Humidity         *float64   `json:"humidity"`
	PH               *float64   `json:"ph"`
	EC               *float64   `json:"ec"`
	PPM              *float64   `json:"ppm"`
	SubstrateMoist   *float64   `json:"substrate_moisture"`
	Nitrogen         *float64   `json:"nitrogen"`
	Phosphorus       *float64   `json:"phosphorus"`
	Potassium        *float64   `json:"potassium"`
	Calcium          *float64   `json:"calcium"`
	Magnesium        *float64   `json:"magnesium"`
	Iron             *float64   `json:"iron"`
	WaterLevelStatus string     `json:"water_level_status"`
}

func (p TelemetryPayload) Readings() map[threshold.Parameter]float64 {
	out := make(map[threshold.Parameter]float64, len(threshold.Parameters))
	set := func(param threshold.Parameter, v *float64) {
		if v != nil {
			out[param] = *v
		}
	}
	set(threshold.Temperature, p.Temperature)
	set(threshold.Humidity, p.Humidity)
	set(threshold.PH, p.PH)
	set(threshold.EC, p.EC)
	set(threshold.PPM, p.PPM)
	set(threshold.SubstrateMoisture, p.SubstrateMoist)
	set(threshold.Nitrogen, p.Nitrogen)
	set(threshold.Phosphorus, p.Phosphorus)
	set(threshold.Potassium, p.Potassium)
	set(threshold.Calcium, p.Calcium)
	set(threshold.Magnesium, p.Magnesium)
	set(threshold.Iron, p.Iron)
	return out
}

// Subscriber feeds broker telemetry into the same ingest path as HTTP.
type Subscriber struct {
	client paho.Client
	topic  string
	qos    byte
	ingest commands.TelemetryCommands
}

func Connect(cfg config.MQTTConfig) (paho.Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetCleanSession(true).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			slog.Warn("mqtt connection lost", "error", err)
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return client, nil
}

func NewSubscriber(client paho.Client, cfg config.MQTTConfig, ingest commands.TelemetryCommands) *Subscriber {
	return &Subscriber{
		client: client,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
		ingest: ingest,
	}
}

func (s *Subscriber) Start() error {
	token := s.client.Subscribe(s.topic, s.qos, func(_ paho.Client, msg paho.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Handle(ctx, msg.Topic(), msg.Payload()); err != nil {
			slog.Warn("mqtt telemetry rejected", "topic", msg.Topic(), "error", err)
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", s.topic, token.Error())
	}
	slog.Info("mqtt subscriber started", "topic", s.topic)
	return nil
}

func (s *Subscriber) Stop() {
	if token := s.client.Unsubscribe(s.topic); token.Wait() && token.Error() != nil {
		slog.Warn("mqtt unsubscribe failed", "error", token.Error())
	}
	s.client.Disconnect(disconnectQuiesce)
	slog.Info("mqtt subscriber stopped")
}

// Handle ingests one message. The device id is the second topic level.
func (s *Subscriber) Handle(ctx context.Context, topic string, payload []byte) error {
	deviceID, err := DeviceFromTopic(topic)
	if err != nil {
		return err
	}

	var body TelemetryPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return errs.Wrap(err, "decode telemetry payload")
	}

	res, err := s.ingest.Ingest(ctx, commands.IngestRequest{
		DeviceID:   deviceID,
		Timestamp:  body.Timestamp,
		Readings:   body.Readings(),
		WaterLevel: body.WaterLevelStatus,
	})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "mqtt telemetry ingested", "device_id", deviceID, "reading_id", res.ReadingID, "alerts", len(res.Alerts))
	return nil
}

func DeviceFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidTopic, topic)
	}
	return parts[1], nil
}
