//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hydro-command/internal/domain/alert"
	"hydro-command/internal/domain/telemetry"
	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/handler/api"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"
	"hydro-command/tests/common/builder"
	"hydro-command/tests/common/httptest"
	"hydro-command/tests/common/testutil"
	commandsmock "hydro-command/tests/mock/commands"
	queriesmock "hydro-command/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SensorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTelemetryCommands
	mockQueries  *queriesmock.MockTelemetryQueries
	deviceKey    map[string]string
}

func (s *SensorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTelemetryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTelemetryQueries(s.mockCtrl)
	h := api.NewSensorHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(fixedNow))
	s.deviceKey = map[string]string{httptest.DeviceKeyHeader: "hn_test_key"}

	s.router.POST("/sensors/ingest", fakeDevice, h.Ingest)
	s.router.GET("/sensors/ingest", fakeDevice, h.Status)
	s.router.GET("/sensors/latest/:device_id", fakeAuth, h.Latest)
}

func (s *SensorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSensorHandlerSuite(t *testing.T) {
	suite.Run(t, new(SensorHandlerTestSuite))
}

func (s *SensorHandlerTestSuite) TestIngest() {
	url := "/sensors/ingest"
	reqBody := builder.NewSensorBuilder().BuildIngestDTO()

	s.Run("success: device comes from the api key, not the body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("device_id", "someone-else"))
		s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.IngestRequest) (*commands.IngestResult, error) {
				s.Equal("grow-bag-1", req.DeviceID)
				s.Equal(6.0, req.Readings[threshold.PH])
				s.Equal(26.5, req.Readings[threshold.Temperature])
				s.NotContains(req.Readings, threshold.PPM)
				return &commands.IngestResult{
					ReadingID: 42,
					DeviceID:  req.DeviceID,
					Timestamp: fixedNow,
					Alerts:    []*alert.Record{{}, {}},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.deviceKey)

		var res resdto.IngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Equal(int64(42), res.ReadingID)
		s.Equal(2, res.Alerts)
	})

	s.Run("success: micronutrient readings are forwarded", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("calcium", 180.0),
			testutil.Field("magnesium", 55.0),
			testutil.Field("iron", 9.5),
		)
		s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.IngestRequest) (*commands.IngestResult, error) {
				s.Equal(180.0, req.Readings[threshold.Calcium])
				s.Equal(55.0, req.Readings[threshold.Magnesium])
				s.Equal(9.5, req.Readings[threshold.Iron])
				return &commands.IngestResult{ReadingID: 43, DeviceID: req.DeviceID, Timestamp: fixedNow}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.deviceKey)

		var res resdto.IngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(43), res.ReadingID)
	})

	s.Run("error: 400 when a required reading is missing", func() {
		for _, field := range []string{"room_temp", "ph", "ec", "substrate_moisture", "humidity"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.deviceKey)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or missing field")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "reading out of range", err: telemetry.ErrOutOfRange, status: http.StatusBadRequest, msg: "Invalid sensor data"},
			{name: "bad water level", err: telemetry.ErrInvalidWaterLvl, status: http.StatusBadRequest, msg: "Invalid sensor data"},
			{name: "device removed", err: errs.ErrDeviceNotFound, status: http.StatusNotFound, msg: "Device not found"},
			{name: "store failure", err: errors.New("disk full"), status: http.StatusInternalServerError, msg: "Failed to process sensor data"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.deviceKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 401 without an api key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "API key required")
	})
}

func (s *SensorHandlerTestSuite) TestStatus() {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/sensors/ingest", nil, s.deviceKey)

	var res resdto.IngestStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal("online", res.Status)
	s.Equal("grow-bag-1", res.DeviceID)
	s.True(fixedNow.Equal(res.Timestamp))
}

func (s *SensorHandlerTestSuite) TestLatest() {
	url := "/sensors/latest/grow-bag-1"

	s.Run("success: returns the reading with statuses", func() {
		view := &queries.ReadingView{
			ID:         7,
			DeviceID:   "grow-bag-1",
			Timestamp:  fixedNow,
			Readings:   map[string]float64{"pH": 7.9},
			WaterLevel: "Adequate",
			Statuses:   map[string]string{"pH": "Warning"},
		}
		s.mockQueries.EXPECT().Latest(gomock.Any(), "grow-bag-1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var res resdto.LatestReadingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Require().NotNil(res.Reading)
		s.Equal("Warning", res.Reading.Statuses["pH"])
	})

	s.Run("error: 404 before the first reading", func() {
		s.mockQueries.EXPECT().Latest(gomock.Any(), "grow-bag-1").Return(nil, queries.ErrReadingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No readings for device")
	})
}
