//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"hydro-command/internal/handler/api"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/queries"
	"hydro-command/tests/common/httptest"
	commandsmock "hydro-command/tests/mock/commands"
	queriesmock "hydro-command/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// echoStream greets the subscriber with the device it asked for.
type echoStream struct{}

func (echoStream) Serve(conn *websocket.Conn, deviceID string) {
	defer conn.Close()
	_ = conn.WriteMessage(websocket.TextMessage, []byte("subscribed:"+deviceID))
}

type AlertHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAlertCommands
	mockQueries  *queriesmock.MockAlertQueries
	userID       uuid.UUID
}

func (s *AlertHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAlertCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAlertQueries(s.mockCtrl)
	s.userID = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	h := api.NewAlertHandler(s.mockCommands, s.mockQueries, echoStream{}, []string{"http://dashboard.local"})

	s.router.GET("/alerts", fakeAuth, h.List)
	s.router.POST("/alerts/dismiss", fakeAuth, h.Dismiss)
	s.router.GET("/alerts/stream", h.Stream)
}

func (s *AlertHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAlertHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}

func (s *AlertHandlerTestSuite) TestList() {
	s.Run("success: filters by device for the caller", func() {
		device := "grow-bag-1"
		views := []*queries.AlertView{{
			ID:        uuid.New(),
			DeviceID:  device,
			Parameter: "pH",
			Message:   "pH critical: 11.0 (range 5.5-6.5)",
			Severity:  "alert",
			Timestamp: fixedNow,
		}}
		s.mockQueries.EXPECT().Recent(gomock.Any(), s.userID, &device, 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts?device_id=grow-bag-1&limit=10", nil, "bearer-token")

		var body struct {
			Success bool                   `json:"success"`
			Alerts  []resdto.AlertResponse `json:"alerts"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Require().Len(body.Alerts, 1)
		s.Equal(views[0].ID.String(), body.Alerts[0].ID)
		s.Equal("alert", body.Alerts[0].Severity)
	})

	s.Run("no device filter uses the default limit", func() {
		s.mockQueries.EXPECT().Recent(gomock.Any(), s.userID, nil, queries.DefaultListLimit).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AlertHandlerTestSuite) TestDismiss() {
	alertID := uuid.New()

	s.Run("success: single alert", func() {
		s.mockCommands.EXPECT().Dismiss(gomock.Any(), alertID, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/dismiss",
			map[string]any{"alertId": alertID}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: dismissAll reports the count", func() {
		device := "grow-bag-1"
		s.mockCommands.EXPECT().DismissAll(gomock.Any(), s.userID, &device).Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/dismiss",
			map[string]any{"dismissAll": true, "deviceId": device}, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(3, body["dismissed"])
	})

	s.Run("error: 400 without alertId or dismissAll", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/dismiss", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "alertId or dismissAll is required")
	})

	s.Run("error: 400 on malformed alertId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/dismiss",
			map[string]any{"alertId": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown alert", err: errs.ErrAlertNotFound, status: http.StatusNotFound},
			{name: "store failure", err: errors.New("broken pipe"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Dismiss(gomock.Any(), alertID, s.userID).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/dismiss",
					map[string]any{"alertId": alertID}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *AlertHandlerTestSuite) TestStream() {
	srv := nethttptest.NewServer(s.router)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/alerts/stream?device_id=grow-bag-1"

	s.Run("allowed origin is upgraded", func() {
		header := http.Header{"Origin": []string{"http://dashboard.local"}}
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		s.Require().NoError(err)
		defer conn.Close()

		_, msg, err := conn.ReadMessage()
		s.Require().NoError(err)
		s.Equal("subscribed:grow-bag-1", string(msg))
	})

	s.Run("foreign origin is refused", func() {
		header := http.Header{"Origin": []string{"http://evil.example"}}
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
		s.Require().Error(err)
		s.Require().NotNil(resp)
		s.Equal(http.StatusForbidden, resp.StatusCode)
	})
}
