package api

import (
	"net/http"
	"strconv"

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

type CommandHandler struct {
	cmds  commands.CommandCommands
	q     queries.CommandQueries
	clock clock.Clock
}

func NewCommandHandler(cmds commands.CommandCommands, q queries.CommandQueries, clk clock.Clock) *CommandHandler {
	return &CommandHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Queue a device command
// @Description Stores a command for the device to pick up on its next poll. Delivery is not acknowledged.
// @Tags commands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param device_id path string true "Device ID"
// @Param request body reqdto.EnqueueCommandRequest true "Command"
// @Success 201 {object} resdto.EnqueueCommandResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /devices/{device_id}/commands [post]
func (h *CommandHandler) Enqueue(c *gin.Context) {
	var req reqdto.EnqueueCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Enqueue(c.Request.Context(), req.ToCommand(c.Param("device_id"), h.clock.Now()))
	if err != nil {
		switch {
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid command", err.Error())
		case errs.Is(err, errs.ErrDeviceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Device not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to queue command", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEnqueueResult(result))
}

// @Summary Poll device commands
// @Description Claims every pending, unexpired command of the device in delivery order. Each command is returned once.
// @Tags commands
// @Produce json
// @Param x-api-key header string true "Device API key"
// @Param device_id path string true "Device ID"
// @Success 200 {object} resdto.PollCommandsResponse
// @Failure 401 {object} httperr.Response
// @Router /devices/{device_id}/commands [get]
func (h *CommandHandler) Poll(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAPIKeyRequired, "API key required", nil)
		return
	}

	cmds, err := h.cmds.Claim(c.Request.Context(), deviceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get device commands", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimed(deviceID, cmds, h.clock.Now()))
}

// @Summary Command history
// @Tags commands
// @Produce json
// @Security BearerAuth
// @Param device_id path string true "Device ID"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {array} resdto.CommandHistoryItem
// @Failure 400 {object} httperr.Response
// @Router /devices/{device_id}/commands/history [get]
func (h *CommandHandler) History(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	views, err := h.q.History(c.Request.Context(), c.Param("device_id"), limit)
	if err != nil {
		if isValidation(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	items, err := resdto.FromCommandHistory(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commands": items})
}
