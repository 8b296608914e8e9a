//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"hydro-command/internal/handler/api"
	"hydro-command/internal/usecase/queries"
	"hydro-command/tests/common/httptest"
	queriesmock "hydro-command/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTelemetryQueries
	report      *queries.ExportReport
}

func (s *ExportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTelemetryQueries(s.mockCtrl)
	s.router.GET("/export", fakeAuth, api.NewExportHandler(s.mockQueries).Export)

	s.report = &queries.ExportReport{
		DeviceID:        "grow-bag-1",
		Hours:           24,
		IntervalMinutes: 60,
		From:            fixedNow.Add(-24 * time.Hour),
		To:              fixedNow,
		Buckets: []queries.ExportBucket{
			{Bucket: fixedNow.Add(-time.Hour), Temperature: 26.1, PH: 6.0, EC: 2.0, Moisture: 70, Humidity: 72, ReadingCount: 12},
		},
	}
}

func (s *ExportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) TestExport() {
	s.Run("csv is the default format", func() {
		s.mockQueries.EXPECT().Export(gomock.Any(), queries.ExportRequest{DeviceID: "grow-bag-1"}).
			Return(s.report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/export?deviceId=grow-bag-1", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Contains(rec.Header().Get("Content-Type"), "text/csv")
		s.Contains(rec.Header().Get("Content-Disposition"), `filename="hydro-nexus_grow-bag-1_24h.csv"`)
		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		s.Len(lines, 2)
	})

	s.Run("hours and interval are forwarded", func() {
		s.mockQueries.EXPECT().Export(gomock.Any(), queries.ExportRequest{DeviceID: "grow-bag-1", Hours: 6, IntervalMinutes: 15}).
			Return(s.report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/export?deviceId=grow-bag-1&format=json&hours=6&interval=15", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Contains(rec.Header().Get("Content-Type"), "application/json")
	})

	s.Run("error: 400 on bad query parameters", func() {
		cases := map[string]string{
			"unknown format": "/export?deviceId=grow-bag-1&format=docx",
			"text hours":     "/export?deviceId=grow-bag-1&hours=all",
			"text interval":  "/export?deviceId=grow-bag-1&interval=hourly",
		}
		for name, url := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})

	s.Run("error: maps query errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "missing device", err: queries.ErrDeviceRequired, status: http.StatusBadRequest, msg: "Device ID required"},
			{name: "empty window", err: queries.ErrNoExportData, status: http.StatusNotFound, msg: "No data found"},
			{name: "store failure", err: errors.New("timeout"), status: http.StatusInternalServerError, msg: "Export failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/export", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
