//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hydro-command/internal/domain/threshold"
	"hydro-command/internal/handler/api"
	resdto "hydro-command/internal/handler/dto/response"
	"hydro-command/internal/usecase/commands"
	"hydro-command/internal/usecase/queries"
	"hydro-command/tests/common/builder"
	"hydro-command/tests/common/httptest"
	commandsmock "hydro-command/tests/mock/commands"
	queriesmock "hydro-command/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ThresholdHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockThresholdCommands
	mockQueries  *queriesmock.MockThresholdQueries
}

func (s *ThresholdHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockThresholdCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockThresholdQueries(s.mockCtrl)
	h := api.NewThresholdHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/user/parameters", fakeAuth, h.Get)
	s.router.POST("/user/parameters", fakeAuth, h.Save)
}

func (s *ThresholdHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestThresholdHandlerSuite(t *testing.T) {
	suite.Run(t, new(ThresholdHandlerTestSuite))
}

func (s *ThresholdHandlerTestSuite) TestGet() {
	view := &queries.ThresholdView{
		DeviceID:   "grow-bag-1",
		Parameters: map[string]queries.ThresholdRange{"pH": {Min: 5.5, Max: 6.5, Unit: "pH"}},
		IsDefault:  true,
	}

	s.Run("accepts camelCase query keys", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "grow-bag-1", nil).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/parameters?deviceId=grow-bag-1", nil, "bearer-token")

		var res resdto.ThresholdsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.IsDefault)
		s.Equal(6.5, res.Parameters["pH"].Max)
	})

	s.Run("accepts snake_case query keys", func() {
		crop := "lettuce"
		s.mockQueries.EXPECT().Get(gomock.Any(), "grow-bag-1", &crop).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/parameters?device_id=grow-bag-1&crop_id=lettuce", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 when lookup fails", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "", nil).Return(nil, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/parameters", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *ThresholdHandlerTestSuite) TestSave() {
	reqBody := builder.NewThresholdBuilder().ForDevice("grow-bag-1").BuildSaveDTO()
	saved, err := threshold.NewSet("grow-bag-1", nil, map[threshold.Parameter]threshold.Range{
		threshold.PH: {Min: 5.8, Max: 6.2},
		threshold.EC: {Min: 1.5, Max: 2.0},
	}, fixedNow)
	s.Require().NoError(err)

	s.Run("success: saves on behalf of the caller", func() {
		s.mockCommands.EXPECT().Save(gomock.Any(), gomock.Any(), uuid.MustParse("11111111-2222-3333-4444-555555555555")).
			DoAndReturn(func(_ any, req commands.SaveThresholdsRequest, _ uuid.UUID) (*threshold.Set, error) {
				s.Equal("grow-bag-1", req.DeviceID)
				s.Equal(threshold.Range{Min: 5.8, Max: 6.2}, req.Parameters["pH"])
				return saved, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/parameters", reqBody, "bearer-token")

		var res resdto.SaveThresholdsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Equal("grow-bag-1", res.DeviceID)
	})

	s.Run("error: 400 when parameters is not an object", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/parameters",
			map[string]any{"parameters": []int{1, 2}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must be an object")
	})

	s.Run("error: 400 on domain validation", func() {
		s.mockCommands.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, threshold.ErrUnknownParameter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/parameters", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid parameters")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/user/parameters", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to save parameters")
	})
}
