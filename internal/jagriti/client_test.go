package jagriti

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/jagriti-case-api/internal/config"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()

	log, err := logger.NewLogger("error", "json")
	require.NoError(t, err)

	return NewClient(&config.Config{
		JagritiBaseURL:   baseURL,
		UserAgent:        "test-agent",
		RequestTimeout:   timeout,
		MaxRetries:       3,
		RetryBackoffBase: time.Second,
	}, log)
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	raw, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":    json.RawMessage(raw),
		"message": "Success",
		"error":   "",
		"status":  200,
	})
}

func TestStatesAndCircuitBenches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, statesPath, r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Origin"))

		writeEnvelope(w, []Commission{
			{CommissionID: 11290000, CommissionNameEn: "KARNATAKA", ActiveStatus: true},
			{CommissionID: 11270000, CommissionNameEn: "MAHARASHTRA", ActiveStatus: true},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	states, err := client.StatesAndCircuitBenches(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, 11290000, states[0].CommissionID)
	assert.Equal(t, "KARNATAKA", states[0].CommissionNameEn)
}

func TestDistrictCommissionsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, districtsPath, r.URL.Path)
		assert.Equal(t, "11290000", r.URL.Query().Get("commissionId"))

		writeEnvelope(w, []Commission{
			{CommissionID: 15290525, CommissionNameEn: "Bangalore 1st & Rural Additional", ActiveStatus: true},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	districts, err := client.DistrictCommissions(context.Background(), 11290000)
	require.NoError(t, err)
	require.Len(t, districts, 1)
	assert.Equal(t, 15290525, districts[0].CommissionID)
}

func TestSearchCasesPostBody(t *testing.T) {
	var gotBody CaseSearchPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, caseSearchPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		writeEnvelope(w, []CaseDetail{{CaseNumber: "DC/AB4/525/CC/72/2025"}})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	payload := CaseSearchPayload{
		CommissionID:    15290525,
		DateRequestType: 1,
		FromDate:        "2025-01-01",
		ToDate:          "2025-09-03",
		OrderType:       1,
		SerchType:       2,
		SerchTypeValue:  "REDDY",
	}
	details, err := client.SearchCases(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, payload, gotBody)
}

func TestRetryOnTimeoutExhaustsAttempts(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		// hold the connection until the client gives up
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 30*time.Millisecond)

	var delays []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTimeout, apiErr.Kind)

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	// backoff doubles from the base between attempts
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestNoRetryOnHTTPError(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)
	client.sleep = func(ctx context.Context, d time.Duration) error {
		t.Fatal("sleep should not be called for an HTTP error response")
		return nil
	}

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "upstream broke")
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestNoRetryOnNotFoundStatus(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestMalformedResponseNotRetried(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindMalformed, apiErr.Kind)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestUnreachableUpstreamRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := newTestClient(t, baseURL, time.Second)

	var sleeps int
	client.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnreachable, apiErr.Kind)
	assert.Equal(t, 2, sleeps)
}

func TestEnvelopeDataShapeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// valid envelope, but data is not a commission list
		writeEnvelope(w, map[string]string{"unexpected": "shape"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 5*time.Second)

	_, err := client.StatesAndCircuitBenches(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindMalformed, apiErr.Kind)
}
