package api

import (
	"net/http"

	reqdto "hydro-command/internal/handler/dto/request"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SensorHandler struct {
	cmds  commands.TelemetryCommands
	q     queries.TelemetryQueries
	clock clock.Clock
}

func NewSensorHandler(cmds commands.TelemetryCommands, q queries.TelemetryQueries, clk clock.Clock) *SensorHandler {
	return &SensorHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Ingest a sensor reading
// @Description Stores one reading from the device owning the API key and evaluates it against its thresholds.
// @Tags sensors
// @Accept json
// @Produce json
// @Param x-api-key header string true "Device API key"
// @Param request body reqdto.IngestSensorRequest true "Reading"
// @Success 200 {object} resdto.IngestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /sensors/ingest [post]
func (h *SensorHandler) Ingest(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAPIKeyRequired, "API key required", nil)
		return
	}
	var req reqdto.IngestSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing field", err.Error())
		return
	}

	result, err := h.cmds.Ingest(c.Request.Context(), req.ToCommand(deviceID))
	if err != nil {
		switch {
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sensor data", err.Error())
		case errs.Is(err, errs.ErrDeviceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Device not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process sensor data", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngestResult(result))
}

// @Summary Ingest connectivity check
// @Tags sensors
// @Produce json
// @Param x-api-key header string true "Device API key"
// @Success 200 {object} resdto.IngestStatusResponse
// @Failure 401 {object} httperr.Response
// @Router /sensors/ingest [get]
func (h *SensorHandler) Status(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAPIKeyRequired, "API key required", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.IngestStatusResponse{
		Status:    "online",
		DeviceID:  deviceID,
		Timestamp: h.clock.Now(),
		Message:   "API endpoint is ready to receive sensor data",
	})
}

// @Summary Latest reading
// @Description Most recent reading with per-parameter good/warning/alert status.
// @Tags sensors
// @Produce json
// @Security BearerAuth
// @Param device_id path string true "Device ID"
// @Success 200 {object} resdto.LatestReadingResponse
// @Failure 404 {object} httperr.Response
// @Router /sensors/latest/{device_id} [get]
func (h *SensorHandler) Latest(c *gin.Context) {
	view, err := h.q.Latest(c.Request.Context(), c.Param("device_id"))
	if err != nil {
		switch {
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errs.Is(err, queries.ErrReadingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No readings for device", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.LatestReadingResponse{Success: true, Reading: view})
}
