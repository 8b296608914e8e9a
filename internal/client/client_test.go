//go:build unit

package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hydro-command/internal/client"
	"hydro-command/internal/domain/command"
	reqdto "hydro-command/internal/handler/dto/request"
	"hydro-command/internal/reconciler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, routes func(r *gin.Engine)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_EnqueueCommand(t *testing.T) {
	var got reqdto.EnqueueCommandRequest
	var auth string
	srv := newServer(t, func(r *gin.Engine) {
		r.POST("/api/devices/:device_id/commands", func(c *gin.Context) {
			auth = c.GetHeader("Authorization")
			require.NoError(t, c.ShouldBindJSON(&got))
			c.JSON(http.StatusCreated, gin.H{
				"success":    true,
				"command_id": "7d9f0c4e-1111-2222-3333-444455556666",
				"device_id":  c.Param("device_id"),
				"action":     got.Action,
				"priority":   got.Priority,
			})
		})
	})

	c := client.New(client.Config{BaseURL: srv.URL, Token: "jwt-token"}, nil)
	res, err := c.EnqueueCommand(context.Background(), "grow-bag-1", reqdto.EnqueueCommandRequest{
		Action:     command.ActionRelay2On,
		Parameters: map[string]any{"duration": 30},
		Priority:   "high",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", auth)
	assert.Equal(t, command.ActionRelay2On, got.Action)
	assert.Equal(t, "grow-bag-1", res.DeviceID)
	assert.Equal(t, "high", res.Priority)
}

func TestClient_APIErrors(t *testing.T) {
	srv := newServer(t, func(r *gin.Engine) {
		r.POST("/api/devices/:device_id/commands", func(c *gin.Context) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":  gin.H{"message": "Insufficient permissions"},
				"detail": gin.H{"required": "operator", "current": "viewer"},
			})
		})
		r.GET("/api/sensors/latest/:device_id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "No readings for device"}})
		})
	})
	c := client.New(client.Config{BaseURL: srv.URL}, nil)

	_, err := c.EnqueueCommand(context.Background(), "grow-bag-1", reqdto.EnqueueCommandRequest{Action: "restart"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Insufficient permissions", apiErr.Message)
	assert.Equal(t, "permission", apiErr.FailureReason())
	assert.Contains(t, err.Error(), "operator")

	_, err = c.LatestReading(context.Background(), "grow-bag-1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "server", apiErr.FailureReason())
}

func TestClient_RetriesOnlyGET(t *testing.T) {
	var gets, posts atomic.Int32
	srv := newServer(t, func(r *gin.Engine) {
		r.GET("/api/devices", func(c *gin.Context) {
			if gets.Add(1) < 3 {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "warming up"}})
				return
			}
			c.JSON(http.StatusOK, gin.H{"devices": []gin.H{{"device_id": "grow-bag-1", "name": "Bag"}}})
		})
		r.POST("/api/devices/:device_id/commands", func(c *gin.Context) {
			posts.Add(1)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to queue command"}})
		})
	})
	c := client.New(client.Config{BaseURL: srv.URL, Retries: 3, Timeout: time.Second}, nil)

	devices, err := c.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, int32(3), gets.Load())

	_, err = c.EnqueueCommand(context.Background(), "grow-bag-1", reqdto.EnqueueCommandRequest{Action: "restart"})
	require.Error(t, err)
	assert.Equal(t, int32(1), posts.Load())
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(client.Config{BaseURL: url, Timeout: 500 * time.Millisecond}, nil)
	_, err := c.PollCommands(context.Background(), "grow-bag-1")

	var te *client.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "connectivity", te.FailureReason())
}

func TestClient_Export(t *testing.T) {
	srv := newServer(t, func(r *gin.Engine) {
		r.GET("/api/export", func(c *gin.Context) {
			assert.Equal(t, "grow-bag-1", c.Query("deviceId"))
			assert.Equal(t, "6", c.Query("hours"))
			c.Header("Content-Disposition", `attachment; filename="hydro-nexus_grow-bag-1_6h.csv"`)
			c.Data(http.StatusOK, "text/csv", []byte("Timestamp\n"))
		})
	})
	c := client.New(client.Config{BaseURL: srv.URL}, nil)

	body, name, err := c.Export(context.Background(), "grow-bag-1", "csv", 6)
	require.NoError(t, err)
	assert.Equal(t, "hydro-nexus_grow-bag-1_6h.csv", name)
	assert.Equal(t, "Timestamp\n", string(body))
}

func TestCommandDispatcher_DrivesReconciler(t *testing.T) {
	var actions []string
	srv := newServer(t, func(r *gin.Engine) {
		r.POST("/api/devices/:device_id/commands", func(c *gin.Context) {
			var req reqdto.EnqueueCommandRequest
			require.NoError(t, c.ShouldBindJSON(&req))
			actions = append(actions, req.Action+":"+req.Priority)
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})
	})
	c := client.New(client.Config{BaseURL: srv.URL, Token: "t"}, nil)

	var d reconciler.Dispatcher = client.NewCommandDispatcher(c, "grow-bag-1")
	require.NoError(t, d.Dispatch(context.Background(), command.ActionNutrientPumpOn, map[string]any{"duration": 5}, command.PriorityNormal))
	require.NoError(t, d.Dispatch(context.Background(), command.ActionEmergencyStop, nil, command.PriorityHigh))

	assert.Equal(t, []string{"nutrient_pump_on:normal", "emergency_stop:high"}, actions)
}
