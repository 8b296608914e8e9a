package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "hydro-command/internal/handler/dto/request"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// AlertStream serves one websocket subscriber until it disconnects.
type AlertStream interface {
	Serve(conn *websocket.Conn, deviceID string)
}

type AlertHandler struct {
	cmds     commands.AlertCommands
	q        queries.AlertQueries
	stream   AlertStream
	upgrader websocket.Upgrader
}

func NewAlertHandler(cmds commands.AlertCommands, q queries.AlertQueries, stream AlertStream, allowedOrigins []string) *AlertHandler {
	return &AlertHandler{
		cmds:   cmds,
		q:      q,
		stream: stream,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// @Summary Recent alerts
// @Description Alert and error records not dismissed by the caller, newest first.
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param device_id query string false "Device ID"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {array} resdto.AlertResponse
// @Router /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrAuthenticationRequired, "Authentication required", nil)
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	views, err := h.q.Recent(c.Request.Context(), userID, deviceParam(c.Query("device_id")), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	items, err := resdto.FromAlertViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": items})
}

// @Summary Dismiss alerts
// @Description Hides one alert, or every alert when dismissAll is set, for the caller only.
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DismissAlertRequest true "Dismissal"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /alerts/dismiss [post]
func (h *AlertHandler) Dismiss(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrAuthenticationRequired, "Authentication required", nil)
		return
	}
	var req reqdto.DismissAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "alertId or dismissAll is required", nil)
		return
	}

	if req.DismissAll {
		n, err := h.cmds.DismissAll(c.Request.Context(), userID, req.DeviceID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to dismiss alerts", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "dismissed": n, "message": "All alerts dismissed"})
		return
	}

	if err := h.cmds.Dismiss(c.Request.Context(), *req.AlertID, userID); err != nil {
		if errs.Is(err, errs.ErrAlertNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Alert not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to dismiss alert", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert dismissed"})
}

// @Summary Alert stream
// @Description Websocket push of new alert records. Browsers pass the token as a query parameter.
// @Tags alerts
// @Param device_id query string false "Only alerts of this device"
// @Param token query string false "Access token"
// @Success 101 "Switching Protocols"
// @Router /alerts/stream [get]
func (h *AlertHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	h.stream.Serve(conn, c.Query("device_id"))
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
