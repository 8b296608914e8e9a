package export

import (
	"encoding/json"
	"time"

	"hydro-command/internal/usecase/queries"
)

type jsonAlert struct {
	Parameter string    `json:"parameter"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

type jsonDocument struct {
	DeviceID   string      `json:"deviceId"`
	Hours      int         `json:"hours"`
	Interval   int         `json:"interval"`
	From       time.Time   `json:"from"`
	To         time.Time   `json:"to"`
	DataPoints int         `json:"dataPoints"`
	Data       []row       `json:"data"`
	Alerts     []jsonAlert `json:"alerts"`
}

func renderJSON(report *queries.ExportReport) ([]byte, error) {
	data := rows(report)
	alerts := make([]jsonAlert, 0, len(report.Alerts))
	for _, a := range report.Alerts {
		alerts = append(alerts, jsonAlert{Parameter: a.Parameter, Message: a.Message, Severity: a.Severity, Timestamp: a.Timestamp})
	}
	return json.MarshalIndent(jsonDocument{
		DeviceID:   report.DeviceID,
		Hours:      report.Hours,
		Interval:   report.IntervalMinutes,
		From:       report.From,
		To:         report.To,
		DataPoints: len(data),
		Data:       data,
		Alerts:     alerts,
	}, "", "  ")
}
