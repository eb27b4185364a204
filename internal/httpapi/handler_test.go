package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/stoker/internal/state"
	"github.com/five82/stoker/internal/stokercloud"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func fixtureStore(t *testing.T) *state.Store {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "stokercloud", "testdata", "status.json"))
	require.NoError(t, err)
	status, err := stokercloud.ParseStatus(data)
	require.NoError(t, err)

	store := &state.Store{}
	store.Update(status, nil)
	return store
}

func serve(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := NewHandler(&state.Store{}, nil, zerolog.Nop()).InitRoutes()
	w := serve(t, router, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetStatus_BeforeFirstPollIs503(t *testing.T) {
	store := &state.Store{}
	store.Update(nil, errors.New("dial tcp: connection refused"))
	router := NewHandler(store, nil, zerolog.Nop()).InitRoutes()

	w := serve(t, router, http.MethodGet, "/api/status")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errNoStatus, body["error"])
	assert.Contains(t, body["last_error"], "connection refused")
}

func TestGetStatus_ReturnsSnapshot(t *testing.T) {
	router := NewHandler(fixtureStore(t), nil, zerolog.Nop()).InitRoutes()

	w := serve(t, router, http.MethodGet, "/api/status")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view StatusView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "21467", view.Serial)
	assert.Equal(t, "MOC", view.State)
	assert.False(t, view.Offline)
	assert.Empty(t, view.Error)
	require.NotEmpty(t, view.Readings)

	var boiler *ReadingView
	for i := range view.Readings {
		if view.Readings[i].Key == "boiler_temperature_current" {
			boiler = &view.Readings[i]
		}
	}
	require.NotNil(t, boiler)
	assert.Equal(t, "62.34", boiler.Value)
	assert.Equal(t, "deg", boiler.Unit)
}

func TestGetReading(t *testing.T) {
	router := NewHandler(fixtureStore(t), nil, zerolog.Nop()).InitRoutes()

	w := serve(t, router, http.MethodGet, "/api/readings/smoke_temperature")
	require.Equal(t, http.StatusOK, w.Code)
	var rv ReadingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rv))
	assert.Equal(t, "121.4", rv.Value)

	w = serve(t, router, http.MethodGet, "/api/readings/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefresh(t *testing.T) {
	store := fixtureStore(t)
	calls := 0
	refresh := func(context.Context) error {
		calls++
		return nil
	}
	router := NewHandler(store, refresh, zerolog.Nop()).InitRoutes()

	w := serve(t, router, http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)

	failing := NewHandler(store, func(context.Context) error { return errors.New("boom") }, zerolog.Nop()).InitRoutes()
	w = serve(t, failing, http.MethodPost, "/api/refresh")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "boom")

	disabled := NewHandler(store, nil, zerolog.Nop()).InitRoutes()
	w = serve(t, disabled, http.MethodPost, "/api/refresh")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewStatusView_CarriesErrors(t *testing.T) {
	store := fixtureStore(t)
	store.Update(nil, errors.New("timeout"))
	store.Update(nil, errors.New("timeout again"))

	view := NewStatusView(store.Snapshot())
	assert.True(t, view.Offline)
	assert.Equal(t, 2, view.ConsecutiveFailures)
	assert.Equal(t, "timeout again", view.Error)
	assert.Equal(t, "21467", view.Serial, "previous data is kept")
}
