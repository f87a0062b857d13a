package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/surfagenda/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLanguage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, Language.Portuguese, RequestLanguage(r))

	r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	assert.Equal(t, Language.English, RequestLanguage(r))

	assert.Equal(t, "Event not found", Responses.EventNotFound.In(Language.English))
	assert.Equal(t, "O evento não existe", Responses.EventNotFound.In("fr"))
}

func TestWriteJSONError(t *testing.T) {
	rs := httptest.NewRecorder()
	NewResponseWriter(rs).WriteJSON(http.StatusNotFound, nil, nil, "O evento não existe")

	assert.Equal(t, http.StatusNotFound, rs.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rs.Body.Bytes(), &body))
	assert.Equal(t, "O evento não existe", body["error"])
}

func TestErrorEnvelope(t *testing.T) {
	rs := httptest.NewRecorder()
	NewResponseWriter(rs).Error(http.StatusBadRequest, "bad", WithErrorScope("query"))

	var body generalResponse
	require.NoError(t, json.Unmarshal(rs.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "query", body.Errors[0].Scope)
}

func TestLoggerRequestSetsRequestID(t *testing.T) {
	rs := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	called := false
	LoggerRequest(rs, r, func(_ http.ResponseWriter, next *http.Request) {
		called = true
		assert.Equal(t, next.Header.Get("X-Request-ID"), config.LoggerFrom(next.Context()).Data["request_id"])
	})

	assert.True(t, called)
	assert.NotEmpty(t, rs.Header().Get("X-Request-ID"))

	rs = httptest.NewRecorder()
	r.Header.Set("X-Request-ID", "abc")
	LoggerRequest(rs, r, func(http.ResponseWriter, *http.Request) {})
	assert.Equal(t, "abc", rs.Header().Get("X-Request-ID"))
}
