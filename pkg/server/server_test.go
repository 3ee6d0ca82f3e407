package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/finsync/pkg/models/api"
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Name() string {
	return "mock"
}

func (m *mockSource) Records(ctx context.Context) ([]domain.DailyRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DailyRecord), args.Error(1)
}

func testRecords() []domain.DailyRecord {
	methods := func(amount float64) domain.MethodBreakdown {
		return domain.MethodBreakdown{domain.MethodPIX: amount}
	}
	return []domain.DailyRecord{
		domain.NewDailyRecord("2024-03-01", 5000, 4800, methods(4800), []domain.Transaction{
			{ID: "TRANS000001", Method: domain.MethodPIX, Amount: 4800, Status: domain.StatusPending},
		}),
		domain.NewDailyRecord("2024-04-01", 5000, 5100, methods(5100), []domain.Transaction{
			{ID: "TRANS000002", Method: domain.MethodPIX, Amount: 5100, Status: domain.StatusError},
		}),
	}
}

func setupServer(t *testing.T) (*httptest.Server, *mockSource) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	src := new(mockSource)
	src.On("Records", mock.Anything).Return(testRecords(), nil)

	ctrl := dashboard.NewController(src)
	require.NoError(t, ctrl.Load(logger.WithContext(context.Background())))

	presetsPath := filepath.Join(t.TempDir(), "presets.ini")
	require.NoError(t, os.WriteFile(presetsPath, []byte("[march]\nstart = 2024-03-01\nend = 2024-03-31\nview = monthly\n\n[weekly]\nstart = 2024-03-01\nend = 2024-03-31\nview = weekly\n"), 0o600))
	presets, err := config.NewPresets(presetsPath)
	require.NoError(t, err)

	router := ConfigureRouter(Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Controller: ctrl,
			Presets:    presets,
			Logger:     logger,
		},
	})
	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)
	return testServer, src
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer, src := setupServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "History",
			method:         http.MethodGet,
			path:           "/api/v1/history?from=2024-01-01&to=2024-12-31&view=monthly",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				history := parse[api.History](t, body)
				require.Len(t, history.Items, 2)
				assert.Equal(t, "2024-03", history.Items[0].Date)
				assert.Equal(t, "pending", history.Items[0].Status)
				assert.Equal(t, "error", history.Items[1].Status)
				assert.Equal(t, 1, history.Summary.TotalDiscrepancies)
				assert.Len(t, history.Charts, 4)
			},
		},
		{
			name:           "History_Preset",
			method:         http.MethodGet,
			path:           "/api/v1/history?preset=march",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				history := parse[api.History](t, body)
				assert.Equal(t, api.Filter{StartDate: "2024-03-01", EndDate: "2024-03-31", Method: "all", View: "monthly"}, history.Filter)
				require.Len(t, history.Items, 1)
			},
		},
		{
			name:           "History_InvalidPreset",
			method:         http.MethodGet,
			path:           "/api/v1/history?preset=weekly",
			expectedStatus: http.StatusBadRequest,
			check:          expectText("preset weekly: invalid view type: \"weekly\"\n"),
		},
		{
			name:           "History_UnknownPreset",
			method:         http.MethodGet,
			path:           "/api/v1/history?preset=q9",
			expectedStatus: http.StatusNotFound,
			check:          expectText("preset not found: q9\n"),
		},
		{
			name:           "History_MissingDates",
			method:         http.MethodGet,
			path:           "/api/v1/history?from=2024-01-01",
			expectedStatus: http.StatusBadRequest,
			check:          expectText("start and end dates are required\n"),
		},
		{
			name:           "History_InvalidView",
			method:         http.MethodGet,
			path:           "/api/v1/history?from=2024-01-01&to=2024-12-31&view=weekly",
			expectedStatus: http.StatusBadRequest,
			check:          expectText("invalid view type: \"weekly\"\n"),
		},
		{
			name:           "NextPage",
			method:         http.MethodPost,
			path:           "/api/v1/history/pages/next",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				history := parse[api.History](t, body)
				assert.Equal(t, api.Page{Number: 1, Size: 10, TotalItems: 1, TotalPages: 1}, history.Page)
			},
		},
		{
			name:           "Day",
			method:         http.MethodGet,
			path:           "/api/v1/days/2024-03-01",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				detail := parse[api.DayDetail](t, body)
				assert.Equal(t, -200.0, detail.Record.Difference)
				assert.Equal(t, []api.Transaction{{ID: "TRANS000001", Method: "pix", Amount: 4800, Status: "pending"}},
					detail.Record.Transactions)
				assert.Equal(t, api.StatusCounts{Pending: 1}, detail.StatusCounts)
				assert.Equal(t, api.StatusPercentages{Pending: 100}, detail.StatusPercentages)
			},
		},
		{
			name:           "Day_NotFound",
			method:         http.MethodGet,
			path:           "/api/v1/days/2024-05-01",
			expectedStatus: http.StatusNotFound,
			check:          expectText("no record found for date 2024-05-01\n"),
		},
		{
			name:           "Compare",
			method:         http.MethodGet,
			path:           "/api/v1/compare?p1_from=2024-03-01&p1_to=2024-03-31&p2_from=2024-04-01&p2_to=2024-04-30",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				cmp := parse[api.Comparison](t, body)
				assert.Equal(t, -200.0, cmp.Period1.Difference)
				assert.Equal(t, 100.0, cmp.Period2.Difference)
				assert.Equal(t, "bar-grouped", cmp.Chart.Kind)
				assert.Equal(t, []string{"Expected", "Received", "Difference"}, cmp.Chart.Labels)
			},
		},
		{
			name:           "Compare_InvalidDate",
			method:         http.MethodGet,
			path:           "/api/v1/compare?p1_from=2024-03-01&p1_to=2024-03-31&p2_from=2024/04/01&p2_to=2024-04-30",
			expectedStatus: http.StatusBadRequest,
			check:          expectText("invalid date format. Expected format: YYYY-MM-DD: \"2024/04/01\"\n"),
		},
		{
			name:           "Transactions",
			method:         http.MethodGet,
			path:           "/api/v1/transactions?status=error",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				txs := parse[[]api.Transaction](t, body)
				assert.Equal(t, []api.Transaction{{ID: "TRANS000002", Date: "2024-04-01", Method: "pix", Amount: 5100, Status: "error"}}, txs)
			},
		},
		{
			name:           "Export",
			method:         http.MethodPost,
			path:           "/api/v1/exports",
			body:           `{"report_type":"detailed","format":"csv","include_charts":false}`,
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, body []byte) {
				receipt := parse[api.ExportReceipt](t, body)
				assert.NotEmpty(t, receipt.ID)
				assert.Equal(t, "Exporting detailed daily report in CSV format (without charts)", receipt.Message)
			},
		},
		{
			name:           "ExportDay",
			method:         http.MethodPost,
			path:           "/api/v1/days/2024-04-01/export",
			expectedStatus: http.StatusAccepted,
			check: func(t *testing.T, body []byte) {
				receipt := parse[api.ExportReceipt](t, body)
				assert.Equal(t, "2024-04-01", receipt.Date)
			},
		},
		{
			name:           "Presets",
			method:         http.MethodGet,
			path:           "/api/v1/presets",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				presets := parse[[]api.Preset](t, body)
				assert.Equal(t, []api.Preset{{Name: "march", StartDate: "2024-03-01", EndDate: "2024-03-31", Method: "all", View: "monthly"}}, presets)
			},
		},
		{
			name:           "Reload",
			method:         http.MethodPost,
			path:           "/api/v1/reload",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				history := parse[api.History](t, body)
				assert.Equal(t, "2024-03-01", history.Filter.StartDate)
				assert.Equal(t, "2024-04-01", history.Filter.EndDate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}

	src.AssertNumberOfCalls(t, "Records", 2)
}

func parse[T any](t *testing.T, data []byte) T {
	t.Helper()
	var response T
	require.NoError(t, json.Unmarshal(data, &response), string(data))
	return response
}

func expectText(expected string) func(*testing.T, []byte) {
	return func(t *testing.T, body []byte) {
		assert.Equal(t, expected, string(body))
	}
}
