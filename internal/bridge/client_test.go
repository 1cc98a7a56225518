package bridge

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	var gotToken, gotCalculationID atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/summary/report", r.URL.Path)
		gotToken.Store(r.Header.Get("X-Internal-Token"))
		gotCalculationID.Store(r.Header.Get("X-Calculation-ID"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var report ReportRequest
		require.NoError(t, json.Unmarshal(body, &report))
		require.Len(t, report.Entries, 1)
		require.NotEmpty(t, report.GeneratedAt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accepted": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	entries := []SummaryEntry{{
		Series:         "Asset & Depreciation",
		Model:          "SEBIT-DDA",
		HeadlineAmount: 123.45,
		Currency:       "KRW",
	}}

	resp, err := client.Forward("calc-1", entries)
	require.NoError(t, err)
	require.Equal(t, true, resp["accepted"])
	require.Equal(t, "secret-token", gotToken.Load())
	require.Equal(t, "calc-1", gotCalculationID.Load())
}

func TestForwardServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	_, err := client.Forward("calc-2", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestForwardBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	for i := 0; i < 5; i++ {
		_, err := client.Forward("calc-3", nil)
		require.Error(t, err)
	}

	// The breaker trips after three consecutive failures; later calls fail
	// fast without reaching the server.
	require.Equal(t, int64(3), hits.Load())
}
