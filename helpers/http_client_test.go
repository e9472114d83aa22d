package helpers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRetries(t *testing.T, n int) {
	t.Helper()
	prev := defaultRetryCount
	prevBase := defaultBackoffBase
	SetDefaultRetryCount(n)
	defaultBackoffBase = time.Millisecond
	t.Cleanup(func() {
		defaultRetryCount = prev
		defaultBackoffBase = prevBase
	})
}

func TestDoJSONWithHeadersSuccess(t *testing.T) {
	withRetries(t, 0)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Id   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := DoJSONWithHeaders("POST", srv.URL, map[string]string{"Authorization": "Bearer token-123"},
		map[string]interface{}{"x": 1}, &out, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Id)
	assert.Equal(t, "ok", out.Name)
}

func TestDoJSONNonSuccessBecomesHTTPError(t *testing.T) {
	withRetries(t, 0)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already enrolled in this course"}`))
	}))
	defer srv.Close()

	err := DoJSON("POST", srv.URL, map[string]interface{}{"courseId": 1}, nil, 2*time.Second)
	require.Error(t, err)

	assert.True(t, IsHTTPError(err, http.StatusConflict))
	assert.False(t, IsHTTPError(err, http.StatusNotFound))
	assert.Equal(t, "already enrolled in this course", RemoteMessage(err))
}

func TestDoJSONRetriesTransientFailures(t *testing.T) {
	withRetries(t, 2)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := DoJSON("GET", srv.URL, nil, &out, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestDoJSONDoesNotRetryClientErrors(t *testing.T) {
	withRetries(t, 3)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"courseId required"}`))
	}))
	defer srv.Close()

	err := DoJSON("POST", srv.URL, map[string]interface{}{}, nil, 2*time.Second)
	require.Error(t, err)
	assert.True(t, IsHTTPError(err, http.StatusBadRequest))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDoJSONEmptyBodyLeavesOutUntouched(t *testing.T) {
	withRetries(t, 0)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out := map[string]interface{}{"sentinel": true}
	err := DoJSON("DELETE", srv.URL, nil, &out, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, true, out["sentinel"])
}

func TestRemoteMessageNonJSONBody(t *testing.T) {
	err := &HTTPError{Status: 500, Body: "<html>oops</html>"}
	assert.Empty(t, RemoteMessage(err))
	assert.Empty(t, RemoteMessage(nil))
}
