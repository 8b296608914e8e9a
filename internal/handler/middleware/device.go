package middleware

import (
	"net/http"

	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	APIKeyHeader      = "x-api-key"
	ctxDeviceIDKey    = "device_id"
	deviceIDPathParam = "device_id"
)

type DeviceAuthMiddleware struct {
	authenticator usecase.DeviceAuthenticator
}

func NewDeviceAuthMiddleware(authenticator usecase.DeviceAuthenticator) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{authenticator: authenticator}
}

// RequireDevice authenticates the x-api-key header. On routes with a
// :device_id segment the key must belong to that device.
func (m *DeviceAuthMiddleware) RequireDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID, err := m.authenticator.Authenticate(c.Request.Context(), c.GetHeader(APIKeyHeader), c.Param(deviceIDPathParam))
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrAPIKeyRequired):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "API key required", nil)
			case errs.Is(err, errs.ErrInvalidAPIKey):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid API key or device mismatch", nil)
			default:
				httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Device authentication unavailable", nil)
			}
			return
		}

		c.Set(ctxDeviceIDKey, deviceID)
		c.Next()
	}
}

func GetDeviceID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxDeviceIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
