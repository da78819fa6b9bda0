package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/barcommun/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("bogus"))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = slogx.Annotate(r, "sub", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
		require.NotNil(t, slogx.FromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates and echoes a request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/roles", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		reqID := rec.Header().Get(slogx.RequestIDHeader)
		require.NotEmpty(t, reqID)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.Equal(t, reqID, line["req_id"])
		require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", line["sub"])
		require.EqualValues(t, http.StatusTeapot, line["status"])
	})

	t.Run("keeps a caller supplied request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/v1/roles", nil)
		req.Header.Set(slogx.RequestIDHeader, "abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "abc", rec.Header().Get(slogx.RequestIDHeader))
	})
}
