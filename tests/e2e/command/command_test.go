//go:build e2e

package command_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/domain/user"
	"hydro-command/internal/handler/dto/request"
	"hydro-command/internal/handler/dto/response"
	"hydro-command/tests/common/builder"
	"hydro-command/tests/common/dbtest"
	"hydro-command/tests/common/httptest"
	"hydro-command/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const commandsURL = "/api/devices/%s/commands"

type CommandSuite struct {
	e2e.SharedSuite
}

func TestCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) enqueue(deviceID, token string, body request.EnqueueCommandRequest) response.EnqueueCommandResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandsURL, deviceID), body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.EnqueueCommandResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *CommandSuite) poll(deviceID, apiKey string) response.PollCommandsResponse {
	t := s.T()
	w := httptest.PerformDeviceRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commandsURL, deviceID), nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.PollCommandsResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func actions(res response.PollCommandsResponse) []string {
	out := make([]string, len(res.Commands))
	for i, c := range res.Commands {
		out[i] = c.Action
	}
	return out
}

func (s *CommandSuite) TestDelivery() {
	s.Run("poll returns high priority first then insertion order, once", func() {
		t := s.T()
		const device = "grow-bag-1"
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, device)
		token := s.JWT.Token(t, user.RoleOperator)

		for _, c := range []struct{ action, priority string }{
			{command.ActionNutrientPumpOn, "normal"},
			{command.ActionRelay2On, "high"},
			{command.ActionManualDosingCycle, "normal"},
			{command.ActionRestart, "high"},
		} {
			body := builder.NewCommandBuilder().BuildEnqueueDTO()
			body.Action = c.action
			body.Priority = c.priority
			s.enqueue(device, token, body)
		}

		first := s.poll(device, apiKey)
		want := []string{
			command.ActionRelay2On,
			command.ActionRestart,
			command.ActionNutrientPumpOn,
			command.ActionManualDosingCycle,
		}
		if diff := cmp.Diff(want, actions(first)); diff != "" {
			t.Errorf("delivery order mismatch (-want +got):\n%s", diff)
		}

		second := s.poll(device, apiKey)
		require.Empty(t, second.Commands, "claimed commands must not be delivered again")
		require.Equal(t, 4, dbtest.CountCommands(t, s.DB, device, "sent"))
	})

	s.Run("emergency_stop is forced to high priority", func() {
		t := s.T()
		const device = "grow-bag-2"
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, device)
		token := s.JWT.Token(t, user.RoleOperator)

		body := builder.NewCommandBuilder().BuildEnqueueDTO()
		s.enqueue(device, token, body)

		stop := builder.NewCommandBuilder().BuildEnqueueDTO()
		stop.Action = command.ActionEmergencyStop
		stop.Priority = "normal"
		res := s.enqueue(device, token, stop)
		require.Equal(t, "high", res.Priority)

		polled := s.poll(device, apiKey)
		require.Len(t, polled.Commands, 2)
		require.Equal(t, command.ActionEmergencyStop, polled.Commands[0].Action)
	})

	s.Run("expired commands are never delivered", func() {
		t := s.T()
		const device = "grow-bag-3"
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, device)
		token := s.JWT.Token(t, user.RoleOperator)

		ttl := 1
		body := builder.NewCommandBuilder().BuildEnqueueDTO()
		body.TTLSeconds = &ttl
		s.enqueue(device, token, body)

		time.Sleep(1200 * time.Millisecond)

		polled := s.poll(device, apiKey)
		require.Empty(t, polled.Commands)
	})

	s.Run("concurrent polls deliver each command exactly once", func() {
		t := s.T()
		const device = "grow-bag-4"
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, device)
		token := s.JWT.Token(t, user.RoleOperator)

		const queued = 20
		for range queued {
			s.enqueue(device, token, builder.NewCommandBuilder().BuildEnqueueDTO())
		}

		const pollers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = map[string]int{}
		)
		for range pollers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformDeviceRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commandsURL, device), nil, apiKey)
				if w.Code != http.StatusOK {
					t.Errorf("poll failed: %d %s", w.Code, w.Body.String())
					return
				}
				var res response.PollCommandsResponse
				if err := httptest.DecodeResponseBody(t, w.Body, &res); err != nil {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				for _, c := range res.Commands {
					seen[c.CommandID]++
				}
			}()
		}
		wg.Wait()

		require.Len(t, seen, queued)
		for id, n := range seen {
			require.Equal(t, 1, n, "command %s delivered %d times", id, n)
		}
	})
}

func (s *CommandSuite) TestAuthorization() {
	s.Run("viewer cannot enqueue", func() {
		t := s.T()
		dbtest.CreateTestDevice(t, s.DB, "grow-bag-1")
		token := s.JWT.Token(t, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandsURL, "grow-bag-1"),
			builder.NewCommandBuilder().BuildEnqueueDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("enqueue without token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandsURL, "grow-bag-1"),
			builder.NewCommandBuilder().BuildEnqueueDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("unknown device returns 404", func() {
		t := s.T()
		token := s.JWT.Token(t, user.RoleOperator)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandsURL, "missing"),
			builder.NewCommandBuilder().BuildEnqueueDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Device not found")
	})

	s.Run("a key for another device cannot poll", func() {
		t := s.T()
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, "grow-bag-1")
		dbtest.CreateTestDevice(t, s.DB, "grow-bag-2")

		w := httptest.PerformDeviceRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commandsURL, "grow-bag-2"), nil, apiKey)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "device mismatch")
	})

	s.Run("poll without key is rejected", func() {
		t := s.T()
		w := httptest.PerformDeviceRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commandsURL, "grow-bag-1"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "API key required")
	})
}

func (s *CommandSuite) TestHistory() {
	s.Run("history lists sent commands", func() {
		t := s.T()
		const device = "grow-bag-5"
		apiKey := dbtest.CreateTestAPIKey(t, s.DB, device)
		token := s.JWT.Token(t, user.RoleOperator)

		s.enqueue(device, token, builder.NewCommandBuilder().BuildEnqueueDTO())
		s.poll(device, apiKey)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commandsURL, device)+"/history", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res struct {
			Commands []response.CommandHistoryItem `json:"commands"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Commands, 1)
		require.Equal(t, "sent", res.Commands[0].Status)
		require.NotNil(t, res.Commands[0].SentAt)
	})
}
