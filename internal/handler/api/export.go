package api

import (
	"fmt"
	"net/http"
	"strconv"

	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/infra/export"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/pkg/metrics"
	"hydro-command/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidNumber = errs.Mark(errs.New("hours and interval must be integers"), errs.ErrDomainValidation)

type ExportHandler struct {
	q queries.TelemetryQueries
}

func NewExportHandler(q queries.TelemetryQueries) *ExportHandler {
	return &ExportHandler{q: q}
}

// @Summary Export readings
// @Description Time-bucketed averages of a device's readings plus the alerts in the window, as a file download.
// @Tags export
// @Produce text/csv,application/json
// @Security BearerAuth
// @Param deviceId query string true "Device ID"
// @Param format query string false "csv, json, xlsx or pdf (default csv)"
// @Param hours query int false "Window in hours, 1..720 (default 24)"
// @Param interval query int false "Bucket width in minutes, 1..1440 (default 60)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid format", err.Error())
		return
	}
	hours, err := optionalInt(c.Query("hours"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hours", nil)
		return
	}
	interval, err := optionalInt(c.Query("interval"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval", nil)
		return
	}

	report, err := h.q.Export(c.Request.Context(), queries.ExportRequest{
		DeviceID:        c.Query("deviceId"),
		Hours:           hours,
		IntervalMinutes: interval,
	})
	if err != nil {
		metrics.IncExport(string(format), "error")
		switch {
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Device ID required", nil)
		case errs.Is(err, queries.ErrNoExportData):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No data found for the specified time range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		}
		return
	}

	doc, err := export.Render(format, report)
	if err != nil {
		metrics.IncExport(string(format), "error")
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}
	metrics.IncExport(string(format), "ok")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.Wrap(errInvalidNumber, err.Error())
	}
	return v, nil
}
