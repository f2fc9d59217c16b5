package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhishek622/moodgap/internal/auth"
	"github.com/abhishek622/moodgap/internal/config"
	"github.com/abhishek622/moodgap/internal/handler"
)

const sampleExport = "full_date,date,weekday,time,mood,activities,note_title,note\n" +
	"2024-05-01,May 1,Wed,09:00,happy,run,,\n"

func newTestApp(today time.Time) *application {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	cfg := &config.Config{
		Env:  "test",
		Port: 8080,
		Auth: config.AuthConfig{Token: "daylio"},
		Server: config.ServerConfig{
			MaxBodyBytes: 1 << 20,
			Timezone:     "UTC",
		},
	}
	return &application{
		Logger:   log,
		Config:   cfg,
		Verifier: auth.NewVerifier(cfg.Auth.Token),
		Handler: &handler.Handler{
			Logger:       log,
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
			Version:      version,
			Now:          func() time.Time { return today },
			Loc:          time.UTC,
		},
	}
}

func postLog(app *application, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/log", strings.NewReader(body))
	if token != "" {
		req.Header.Set("x-authenticate", token)
	}
	app.routes().ServeHTTP(w, req)
	return w
}

func TestLogJournalCurrent(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	w := postLog(app, sampleExport, "daylio")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"missing_dates":[]`)
	assert.Contains(t, w.Body.String(), `"gap_days":0`)
}

func TestLogThreeDayGap(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))

	w := postLog(app, sampleExport, "daylio")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"missing_dates":["2024-05-04","2024-05-03","2024-05-02"]`)
}

func TestLogWrongToken(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))

	w := postLog(app, sampleExport, "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// The rejection must not explain itself.
	assert.NotContains(t, w.Body.String(), "daylio")
	assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
}

func TestLogMissingToken(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))

	w := postLog(app, sampleExport, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogNonUTF8Body(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))

	w := postLog(app, "full_date\n\xff\xfe\n", "daylio")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"ENCODING_ERROR"`)
}

func TestLogHeaderOnlyExport(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))

	w := postLog(app, "full_date,mood\n", "daylio")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NO_ENTRIES"`)
}

func TestLogOversizedBody(t *testing.T) {
	app := newTestApp(time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC))
	app.Handler.MaxBodyBytes = 16

	w := postLog(app, sampleExport, "daylio")

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"BODY_TOO_LARGE"`)
}

func TestHealthzUnauthenticated(t *testing.T) {
	app := newTestApp(time.Now())

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRequestIDEchoed(t *testing.T) {
	app := newTestApp(time.Now())

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	id := w.Header().Get("X-Request-Id")
	require.NotEmpty(t, id)
}
