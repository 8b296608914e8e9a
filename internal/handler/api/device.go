package api

import (
	"net/http"

	reqdto "hydro-command/internal/handler/dto/request"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	cmds commands.DeviceCommands
	q    queries.DeviceQueries
}

func NewDeviceHandler(cmds commands.DeviceCommands, q queries.DeviceQueries) *DeviceHandler {
	return &DeviceHandler{cmds: cmds, q: q}
}

// @Summary List devices
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DeviceResponse
// @Router /devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	items, err := resdto.FromDevices(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": items})
}

// @Summary Register a device
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterDeviceRequest true "Device"
// @Success 201 {object} resdto.DeviceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /devices [post]
func (h *DeviceHandler) Register(c *gin.Context) {
	var req reqdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDeviceExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Device already exists", nil)
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid device", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to register device", nil)
		}
		return
	}
	resp, err := resdto.FromDevice(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Issue a device API key
// @Description The plaintext key is returned once and only its hash is stored.
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param device_id path string true "Device ID"
// @Param request body reqdto.IssueAPIKeyRequest false "Options"
// @Success 201 {object} resdto.APIKeyResponse
// @Failure 404 {object} httperr.Response
// @Router /devices/{device_id}/api-keys [post]
func (h *DeviceHandler) IssueAPIKey(c *gin.Context) {
	var req reqdto.IssueAPIKeyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	key, err := h.cmds.IssueAPIKey(c.Request.Context(), c.Param("device_id"), req.ExpiresAt)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDeviceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Device not found", nil)
		case isValidation(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue API key", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssuedKey(key))
}
