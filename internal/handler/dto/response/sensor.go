package response

import (
	"time"

	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"
)

type IngestResponse struct {
	Success   bool      `json:"success"`
	ReadingID int64     `json:"reading_id"`
	DeviceID  string    `json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	Alerts    int       `json:"alerts"`
	Message   string    `json:"message"`
}

func FromIngestResult(r *commands.IngestResult) *IngestResponse {
	return &IngestResponse{
		Success:   true,
		ReadingID: r.ReadingID,
		DeviceID:  r.DeviceID,
		Timestamp: r.Timestamp,
		Alerts:    len(r.Alerts),
		Message:   "Sensor data stored successfully",
	}
}

type IngestStatusResponse struct {
	Status    string    `json:"status"`
	DeviceID  string    `json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type LatestReadingResponse struct {
	Success bool                 `json:"success"`
	Reading *queries.ReadingView `json:"reading"`
}
