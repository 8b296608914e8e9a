package response

import (
	"time"

	"hydro-command/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AlertResponse struct {
	ID        string    `json:"id" copier:"-"`
	DeviceID  string    `json:"device_id"`
	Parameter string    `json:"parameter"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

func FromAlertViews(views []*queries.AlertView) ([]AlertResponse, error) {
	out := make([]AlertResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	for i, v := range views {
		out[i].ID = v.ID.String()
	}
	return out, nil
}
