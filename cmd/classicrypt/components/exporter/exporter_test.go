package exporter_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/classicrypt/cmd/classicrypt/components/exporter"
	"github.com/sergeii/classicrypt/internal/metrics"
)

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantMetric bool
	}{
		{
			"positive case - metrics are served",
			http.MethodGet,
			"/metrics",
			http.StatusOK,
			true,
		},
		{
			"unknown path",
			http.MethodGet,
			"/status",
			http.StatusNotFound,
			false,
		},
		{
			"wrong method",
			http.MethodPost,
			"/metrics",
			http.StatusMethodNotAllowed,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := metrics.New()
			collector.KeyRepositorySize.Set(7)

			srv := httptest.NewServer(exporter.NewHandler(collector))
			defer srv.Close()

			req, err := http.NewRequestWithContext(t.Context(), tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close() // nolint: errcheck
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMetric {
				assert.Contains(t, string(body), "repo_keys_size 7")
				assert.Contains(t, string(body), "promhttp_metric_handler_requests_total")
			} else {
				assert.NotContains(t, string(body), "repo_keys_size")
			}
		})
	}
}
