//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hydro-command/internal/handler/dto/request"
)

// SensorBuilder produces a reading inside the built-in default ranges.
type SensorBuilder struct {
	RoomTemp          float64
	PH                float64
	EC                float64
	SubstrateMoisture float64
	Humidity          float64
	WaterLevel        string
	Timestamp         *time.Time
}

func NewSensorBuilder() *SensorBuilder {
	return &SensorBuilder{
		RoomTemp:          26.5,
		PH:                6.0,
		EC:                2.1,
		SubstrateMoisture: 70,
		Humidity:          72,
		WaterLevel:        "Adequate",
	}
}

func (b *SensorBuilder) With(mutate func(*SensorBuilder)) *SensorBuilder {
	mutate(b)
	return b
}

func (b *SensorBuilder) BuildIngestDTO() reqdto.IngestSensorRequest {
	temp, ph, ec, moisture, humidity := b.RoomTemp, b.PH, b.EC, b.SubstrateMoisture, b.Humidity
	return reqdto.IngestSensorRequest{
		Timestamp:         b.Timestamp,
		RoomTemp:          &temp,
		PH:                &ph,
		EC:                &ec,
		SubstrateMoisture: &moisture,
		Humidity:          &humidity,
		WaterLevelStatus:  b.WaterLevel,
	}
}
