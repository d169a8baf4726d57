package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fis-tools/fiscal-atlas/pkg/models/api"
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/services/report"
	"github.com/fis-tools/fiscal-atlas/pkg/store/static"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := NewHandler(
		report.NewAssembler(static.NewStore()),
		domain.DefaultDisplayPreferences(),
	)

	router := chi.NewRouter()
	router.Get("/api/v1/views", handler.ListViews)
	router.Get("/api/v1/views/{view}", handler.GetView)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestListViews(t *testing.T) {
	server := setupServer(t)

	resp, err := http.Get(server.URL + "/api/v1/views")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog []api.ViewInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
	require.Len(t, catalog, 8)
	assert.Equal(t, "executive-summary", catalog[0].Key)
	assert.Equal(t, "Executive Summary", catalog[0].Title)
}

func TestGetView(t *testing.T) {
	server := setupServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, model api.DisplayModel)
	}{
		{
			name:           "default preferences",
			path:           "/api/v1/views/executive-summary",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, model api.DisplayModel) {
				assert.Equal(t, "executive-summary", model.View)
				require.NotEmpty(t, model.Metrics)
				assert.NotEmpty(t, model.Metrics[0].Delta, "comparison defaults to on")
			},
		},
		{
			name:           "billions unit",
			path:           "/api/v1/views/debt?unit=billions",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, model api.DisplayModel) {
				require.NotEmpty(t, model.Metrics)
				assert.Contains(t, model.Metrics[0].Value, "B")
			},
		},
		{
			name:           "comparison off",
			path:           "/api/v1/views/revenue?comparison=false",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, model api.DisplayModel) {
				for _, metric := range model.Metrics {
					assert.Empty(t, metric.Delta)
				}
				for _, table := range model.Tables {
					assert.NotContains(t, table.Columns, "Variance")
				}
			},
		},
		{
			name:           "findings carry derived severity",
			path:           "/api/v1/views/audit-findings",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, model api.DisplayModel) {
				require.NotEmpty(t, model.Findings)
				severities := map[string]api.Severity{}
				for _, f := range model.Findings {
					severities[f.Title] = f.Severity
				}
				assert.Equal(t, api.SeverityCritical, severities["Tax Receivables Unverified"])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tc.expectedStatus, resp.StatusCode)

			var model api.DisplayModel
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
			tc.check(t, model)
		})
	}
}

func TestGetView_InvalidSelection(t *testing.T) {
	server := setupServer(t)

	tests := []struct {
		name string
		path string
	}{
		{"unknown view", "/api/v1/views/cashflow"},
		{"unknown unit", "/api/v1/views/revenue?unit=trillions"},
		{"malformed comparison flag", "/api/v1/views/revenue?comparison=sometimes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
