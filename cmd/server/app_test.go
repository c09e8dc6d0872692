package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/ideagen/internal/api/shared"
	"github.com/phrazzld/ideagen/internal/config"
	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		LLM: config.LLMConfig{
			GeminiAPIKey:    "test-api-key",
			ModelName:       config.DefaultModelName,
			Temperature:     config.DefaultTemperature,
			MaxOutputTokens: config.DefaultMaxOutputTokens,
			TimeoutSeconds:  config.DefaultTimeoutSeconds,
		},
		Cache: config.CacheConfig{Enabled: true, MaxEntries: 8},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, cfg *config.Config, gen *mocks.MockGenerator) *httptest.Server {
	t.Helper()
	app, err := newApplicationWithGenerator(cfg, testLogger(), gen)
	require.NoError(t, err)

	router, err := app.setupRouter()
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewApplication(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), testLogger())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.ideaService)
	assert.IsType(t, &generation.MemoizingGenerator{}, app.generator)
}

func TestNewApplication_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = ""

	app, err := newApplication(context.Background(), cfg, testLogger())

	require.Error(t, err)
	assert.Nil(t, app)
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}

func TestNewApplicationWithGenerator_CacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	gen := mocks.NewMockGeneratorWithText("T")

	app, err := newApplicationWithGenerator(cfg, testLogger(), gen)

	require.NoError(t, err)
	assert.Same(t, gen, app.generator)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, testConfig(), mocks.NewMockGeneratorWithText("T"))

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))
}

func TestRouter_Screens(t *testing.T) {
	srv := newTestServer(t, testConfig(), mocks.NewMockGeneratorWithText("T"))

	for path, want := range map[string]string{
		"/":          "Welcome to NIC Startup Generator",
		"/generator": "Enter keywords:",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), want, path)
	}
}

func TestRouter_GenerateForm(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("## Plan")
	srv := newTestServer(t, testConfig(), gen)

	resp, err := http.PostForm(srv.URL+"/generator", url.Values{"mode": {"keywords"}, "input": {"healthcare, AI"}})
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<h2>Results</h2>")
	assert.Equal(t, 1, gen.CallCount())
}

func TestRouter_APIIdeasUsesCache(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("## Plan")
	srv := newTestServer(t, testConfig(), gen)

	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/api/ideas", "application/json",
			strings.NewReader(`{"mode":"problem","input":"Late invoices"}`))
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "## Plan", out["result"])
	}

	assert.Equal(t, 1, gen.CallCount(), "identical prompt should be served from cache")
}

func TestRouter_APIIdeasFailureNotCached(t *testing.T) {
	gen := mocks.MockGeneratorThatFails()
	srv := newTestServer(t, testConfig(), gen)

	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/api/ideas", "application/json",
			strings.NewReader(`{"input":"drones"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	}

	assert.Equal(t, 2, gen.CallCount())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, testConfig(), mocks.NewMockGeneratorWithText("T"))

	resp, err := http.Get(srv.URL + "/api/ideas")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRun_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig()
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	app, err := newApplicationWithGenerator(cfg, testLogger(), mocks.NewMockGeneratorWithText("T"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = app.Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.NoError(t, ctx.Err(), "Run should fail before the deadline")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := testConfig()
	cfg.Server.Port = port
	app, err := newApplicationWithGenerator(cfg, testLogger(), mocks.NewMockGeneratorWithText("T"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, app.Run(ctx))
}
