package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/yigit/prisonadmin/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePool struct {
	closed int
	err    error
}

func (p *fakePool) Close(time.Duration) error {
	p.closed++
	return p.err
}

func testConfig(port string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = port
	cfg.Server.ShutdownTimeout = "2s"
	return cfg
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func startServer(t *testing.T, pool PoolCloser) (*Server, context.CancelFunc, <-chan error) {
	t.Helper()

	s := New(testConfig("0"), testRouter(), pool, zerolog.Nop())
	require.NoError(t, s.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	return s, cancel, done
}

func get(t *testing.T, s *Server, path string) string {
	t.Helper()

	_, port, err := net.SplitHostPort(s.Addr())
	require.NoError(t, err)

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	resp, err := client.Get("http://127.0.0.1:" + port + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServeStopsOnCancelAndDrainsPool(t *testing.T) {
	pool := &fakePool{}
	s, cancel, done := startServer(t, pool)

	assert.Equal(t, "pong", get(t, s, "/ping"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, pool.closed)
}

func TestShutdownReportsPoolThatDidNotDrain(t *testing.T) {
	drainErr := errors.New("1 connections still borrowed")
	pool := &fakePool{err: drainErr}
	_, cancel, done := startServer(t, pool)

	cancel()
	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, drainErr)
}

func TestServeWithoutPool(t *testing.T) {
	_, cancel, done := startServer(t, nil)
	cancel()
	assert.NoError(t, <-done)
}

func TestListenFailsWhenPortIsTaken(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	s := New(testConfig(strconv.Itoa(port)), testRouter(), nil, zerolog.Nop())

	err = s.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, s.Addr())
}

func TestServeRequiresListener(t *testing.T) {
	s := New(testConfig("0"), testRouter(), nil, zerolog.Nop())
	assert.Error(t, s.Serve(context.Background()))
}
