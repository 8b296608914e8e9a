//go:build e2e

package telemetry_test

import (
	"net/http"
	"strings"
	"testing"

	"hydro-command/internal/domain/user"
	"hydro-command/internal/handler/dto/request"
	"hydro-command/internal/handler/dto/response"
	"hydro-command/tests/common/builder"
	"hydro-command/tests/common/dbtest"
	"hydro-command/tests/common/httptest"
	"hydro-command/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ingestURL     = "/api/sensors/ingest"
	alertsURL     = "/api/alerts"
	dismissURL    = "/api/alerts/dismiss"
	parametersURL = "/api/user/parameters"
	exportURL     = "/api/export"
)

type TelemetrySuite struct {
	e2e.SharedSuite
}

func TestTelemetrySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TelemetrySuite))
}

func (s *TelemetrySuite) ingest(apiKey string, body request.IngestSensorRequest) response.IngestResponse {
	t := s.T()
	w := httptest.PerformDeviceRequest(t, s.Router, http.MethodPost, ingestURL, body, apiKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.IngestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *TelemetrySuite) alerts(token, deviceID string) []response.AlertResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, alertsURL+"?device_id="+deviceID, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Alerts []response.AlertResponse `json:"alerts"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Alerts
}

func (s *TelemetrySuite) TestIngestAlerts() {
	s.Run("in-range reading stores without alerts", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-ok")

		res := s.ingest(apiKey, builder.NewSensorBuilder().BuildIngestDTO())
		require.True(t, res.Success)
		require.Equal(t, "bag-ok", res.DeviceID)
		require.Zero(t, res.Alerts)
	})

	s.Run("warning band readings are not persisted", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-warn")
		token := s.JWT.Token(t, user.RoleViewer)

		// default temperature range is 24..30
		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.RoomTemp = 31.5 }).BuildIngestDTO()
		res := s.ingest(apiKey, body)
		require.Zero(t, res.Alerts)
		require.Empty(t, s.alerts(token, "bag-warn"))
	})

	s.Run("alert band reading and low water are persisted", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-hot")
		token := s.JWT.Token(t, user.RoleViewer)

		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) {
			b.RoomTemp = 40
			b.WaterLevel = "Below Required Level"
		}).BuildIngestDTO()
		res := s.ingest(apiKey, body)
		require.Equal(t, 2, res.Alerts)

		got := s.alerts(token, "bag-hot")
		want := []response.AlertResponse{
			{DeviceID: "bag-hot", Parameter: "temperature", Severity: "alert"},
			{DeviceID: "bag-hot", Parameter: "water_level", Severity: "error"},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.AlertResponse{}, "ID", "Message", "Timestamp"),
			cmpopts.SortSlices(func(a, b response.AlertResponse) bool { return a.Parameter < b.Parameter }),
		}
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("alerts mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("micronutrient breach raises an alert", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-iron")
		token := s.JWT.Token(t, user.RoleViewer)

		// default iron range is 2..5
		body := builder.NewSensorBuilder().BuildIngestDTO()
		iron, calcium := 9.5, 170.0
		body.Iron = &iron
		body.Calcium = &calcium
		require.Equal(t, 1, s.ingest(apiKey, body).Alerts)

		got := s.alerts(token, "bag-iron")
		require.Len(t, got, 1)
		require.Equal(t, "iron", got[0].Parameter)
		require.Equal(t, "alert", got[0].Severity)
	})

	s.Run("water level alert is suppressed inside the cooldown window", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-dry")

		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) {
			b.WaterLevel = "Below Required Level"
		}).BuildIngestDTO()
		require.Equal(t, 1, s.ingest(apiKey, body).Alerts)
		require.Zero(t, s.ingest(apiKey, body).Alerts)
	})

	s.Run("missing required field is rejected", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-bad")

		body := builder.NewSensorBuilder().BuildIngestDTO()
		body.PH = nil
		w := httptest.PerformDeviceRequest(t, s.Router, http.MethodPost, ingestURL, body, apiKey)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("out of range sensor value is rejected", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-bad")

		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.PH = 15 }).BuildIngestDTO()
		w := httptest.PerformDeviceRequest(t, s.Router, http.MethodPost, ingestURL, body, apiKey)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid sensor data")
	})
}

func (s *TelemetrySuite) TestThresholds() {
	s.Run("saved device thresholds drive evaluation", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-ph")
		operator := s.JWT.Token(t, user.RoleOperator)

		save := builder.NewThresholdBuilder().ForDevice("bag-ph").BuildSaveDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, parametersURL, save, operator)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, parametersURL+"?deviceId=bag-ph", nil, operator)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var view response.ThresholdsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.False(t, view.IsDefault)
		require.Equal(t, 6.2, view.Parameters["pH"].Max)

		// 10.4 is past 6.2 + 4 but inside the default 6.5 + 4
		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.PH = 10.4 }).BuildIngestDTO()
		require.Equal(t, 1, s.ingest(apiKey, body).Alerts)
	})

	s.Run("unknown device falls back to defaults", func() {
		t := s.T()
		viewer := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, parametersURL+"?deviceId=nobody", nil, viewer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var view response.ThresholdsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.True(t, view.IsDefault)
		require.NotEmpty(t, view.Parameters)
	})

	s.Run("viewer cannot save thresholds", func() {
		t := s.T()
		viewer := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, parametersURL, builder.NewThresholdBuilder().BuildSaveDTO(), viewer)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("inverted range is rejected", func() {
		t := s.T()
		operator := s.JWT.Token(t, user.RoleOperator)

		save := builder.NewThresholdBuilder().BuildSaveDTO()
		save.Parameters["pH"] = request.ThresholdRange{Min: 7, Max: 5}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, parametersURL, save, operator)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *TelemetrySuite) TestDismiss() {
	s.Run("dismissal hides the alert for that user only", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-dismiss")
		alice := s.JWT.Token(t, user.RoleViewer)
		bob := s.JWT.Token(t, user.RoleViewer)

		body := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.RoomTemp = 40 }).BuildIngestDTO()
		s.ingest(apiKey, body)

		list := s.alerts(alice, "bag-dismiss")
		require.Len(t, list, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dismissURL, map[string]any{"alertId": list[0].ID}, alice)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Empty(t, s.alerts(alice, "bag-dismiss"))
		require.Len(t, s.alerts(bob, "bag-dismiss"), 1)
	})

	s.Run("dismissAll clears every alert of the device", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-all")
		viewer := s.JWT.Token(t, user.RoleViewer)

		hot := builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.RoomTemp = 40 }).BuildIngestDTO()
		s.ingest(apiKey, hot)
		s.ingest(apiKey, hot)
		require.Len(t, s.alerts(viewer, "bag-all"), 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dismissURL,
			map[string]any{"dismissAll": true, "deviceId": "bag-all"}, viewer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Empty(t, s.alerts(viewer, "bag-all"))
	})

	s.Run("unknown alert returns 404", func() {
		t := s.T()
		viewer := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, dismissURL,
			map[string]any{"alertId": "6f1f2a4e-8d1c-4c55-9d0e-1f2a3b4c5d6e"}, viewer)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Alert not found")
	})
}

func (s *TelemetrySuite) TestExport() {
	s.Run("csv export aggregates readings", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "bag-export")
		viewer := s.JWT.Token(t, user.RoleViewer)

		s.ingest(apiKey, builder.NewSensorBuilder().BuildIngestDTO())
		s.ingest(apiKey, builder.NewSensorBuilder().With(func(b *builder.SensorBuilder) { b.RoomTemp = 27.5 }).BuildIngestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exportURL+"?deviceId=bag-export&hours=1&interval=60", nil, viewer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Header().Get("Content-Disposition"), "hydro-nexus_bag-export_1h.csv")

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		require.Equal(t, "Timestamp,Temperature_C,pH,EC_mScm,Moisture_pct,Humidity_pct,ReadingCount", strings.TrimSpace(lines[0]))
		require.GreaterOrEqual(t, len(lines), 2)
	})

	s.Run("export without data returns 404", func() {
		t := s.T()
		dbtest.CreateTestDevice(t, s.DB, "bag-empty")
		viewer := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exportURL+"?deviceId=bag-empty", nil, viewer)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No data found")
	})

	s.Run("unsupported format returns 400", func() {
		t := s.T()
		viewer := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exportURL+"?deviceId=bag-export&format=xml", nil, viewer)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid format")
	})
}
