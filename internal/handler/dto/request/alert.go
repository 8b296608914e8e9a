package request

import "github.com/google/uuid"

// DismissAlertRequest dismisses one alert, or all of them when DismissAll is set.
type DismissAlertRequest struct {
	AlertID    *uuid.UUID `json:"alertId" binding:"required_without=DismissAll"`
	DismissAll bool       `json:"dismissAll"`
	DeviceID   *string    `json:"deviceId"`
}
