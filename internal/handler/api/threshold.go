package api

import (
	"net/http"

	reqdto "hydro-command/internal/handler/dto/request"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/handler/httperr"
	"hydro-command/internal/handler/middleware"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ThresholdHandler struct {
	cmds commands.ThresholdCommands
	q    queries.ThresholdQueries
}

func NewThresholdHandler(cmds commands.ThresholdCommands, q queries.ThresholdQueries) *ThresholdHandler {
	return &ThresholdHandler{cmds: cmds, q: q}
}

// @Summary Get thresholds
// @Description Ranges in effect for a device, falling back to the fleet default and then the built-in defaults.
// @Tags thresholds
// @Produce json
// @Security BearerAuth
// @Param deviceId query string false "Device ID (omit for the fleet default)"
// @Param cropId query string false "Crop ID"
// @Success 200 {object} resdto.ThresholdsResponse
// @Router /user/parameters [get]
func (h *ThresholdHandler) Get(c *gin.Context) {
	deviceID := firstQuery(c, "deviceId", "device_id")
	cropID := firstQuery(c, "cropId", "crop_id")

	view, err := h.q.Get(c.Request.Context(), deviceID, deviceParam(cropID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch parameters", nil)
		return
	}
	resp, err := resdto.FromThresholdView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch parameters", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Save thresholds
// @Description Upserts the ranges for a device or the fleet default and invalidates the threshold cache.
// @Tags thresholds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveThresholdsRequest true "Thresholds"
// @Success 200 {object} resdto.SaveThresholdsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /user/parameters [post]
func (h *ThresholdHandler) Save(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrAuthenticationRequired, "Authentication required", nil)
		return
	}
	var req reqdto.SaveThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parameters - must be an object", nil)
		return
	}

	set, err := h.cmds.Save(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		if isValidation(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parameters", err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save parameters", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSavedSet(set))
}

func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
