package request

import (
	"time"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/usecase/commands"
)

// IngestSensorRequest is the body posted by grow-bag controllers.
type IngestSensorRequest struct {
	// DeviceID is informational; the device is taken from the API key.
	DeviceID          string     `json:"device_id"`
	Timestamp         *time.Time `json:"timestamp"`
	RoomTemp          *float64   `json:"room_temp" binding:"required"`
	PH                *float64   `json:"ph" binding:"required"`
	EC                *float64   `json:"ec" binding:"required"`
	SubstrateMoisture *float64   `json:"substrate_moisture" binding:"required"`
	Humidity          *float64   `json:"humidity" binding:"required"`
	PPM               *float64   `json:"ppm"`
	Nitrogen          *float64   `json:"nitrogen"`
	Phosphorus        *float64   `json:"phosphorus"`
	Potassium         *float64   `json:"potassium"`
	Calcium           *float64   `json:"calcium"`
	Magnesium         *float64   `json:"magnesium"`
	Iron              *float64   `json:"iron"`
	WaterLevelStatus  string     `json:"water_level_status"`
}

func (r *IngestSensorRequest) ToCommand(deviceID string) commands.IngestRequest {
	readings := make(map[threshold.Parameter]float64, len(threshold.Parameters))
	for p, v := range map[threshold.Parameter]*float64{
		threshold.Temperature:       r.RoomTemp,
		threshold.PH:                r.PH,
		threshold.EC:                r.EC,
		threshold.SubstrateMoisture: r.SubstrateMoisture,
		threshold.Humidity:          r.Humidity,
		threshold.PPM:               r.PPM,
		threshold.Nitrogen:          r.Nitrogen,
		threshold.Phosphorus:        r.Phosphorus,
		threshold.Potassium:         r.Potassium,
		threshold.Calcium:           r.Calcium,
		threshold.Magnesium:         r.Magnesium,
		threshold.Iron:              r.Iron,
	} {
		if v != nil {
			readings[p] = *v
		}
	}
	return commands.IngestRequest{
		DeviceID:   deviceID,
		Timestamp:  r.Timestamp,
		Readings:   readings,
		WaterLevel: r.WaterLevelStatus,
	}
}
