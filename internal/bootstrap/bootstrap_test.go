package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/prisonadmin/internal/config"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// unreachableDB fails every operation as if the server were down.
type unreachableDB struct {
	batches [][]db.Step
}

func (u *unreachableDB) WithConnection(context.Context, db.ConnFn) error {
	return fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connect: connection refused", apperrors.ErrConnection)
}

func (u *unreachableDB) WithTransaction(context.Context, db.TransactionFn) error {
	return fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connect: connection refused", apperrors.ErrConnection)
}

func (u *unreachableDB) RunSteps(_ context.Context, steps []db.Step) (db.BatchReport, error) {
	u.batches = append(u.batches, steps)
	return db.BatchReport{Applied: len(steps)}, nil
}

func (u *unreachableDB) Ping(context.Context) error { return apperrors.ErrConnection }

func (u *unreachableDB) Snapshot() db.PoolSnapshot { return db.PoolSnapshot{MaxConns: db.MaxConns} }

func newTestRouter(t *testing.T, publicDir string) (*gin.Engine, *unreachableDB) {
	t.Helper()

	database := &unreachableDB{}
	deps, err := BuildDependencies(database, zerolog.Nop())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.Server.PublicDir = publicDir

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	return router, database
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterWithUnreachableDatabase(t *testing.T) {
	router, _ := newTestRouter(t, "")

	w := serve(router, http.MethodGet, "/check-db-connection", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unable to connect", w.Body.String())

	w = serve(router, http.MethodGet, "/inmates", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch inmates", body["message"])
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, errObj["retryable"])
	assert.NotContains(t, w.Body.String(), "127.0.0.1")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(router, http.MethodPost, "/remove-inmate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInitAndSeedRoutesRunStepBatches(t *testing.T) {
	router, database := newTestRouter(t, "")

	w := serve(router, http.MethodPost, "/init-db", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(router, http.MethodPost, "/insert-data", "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, database.batches, 2)
	assert.Equal(t, db.IgnorableOnFailure, database.batches[0][0].Policy)
	assert.Contains(t, database.batches[1][0].SQL, "DELETE FROM")
}

func TestMetricsAndSwaggerAreServed(t *testing.T) {
	router, _ := newTestRouter(t, "")

	serve(router, http.MethodGet, "/inmates", "")

	w := serve(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `prisonadmin_http_requests_total{method="GET",route="/inmates",status_code="500"} 1`)
	assert.Contains(t, w.Body.String(), "prisonadmin_db_pool_max_connections 3")

	w = serve(router, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/add-complete-inmate")
}

func TestStaticPagesAndUnknownRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Prison admin</h1>"), 0o644))
	router, _ := newTestRouter(t, dir)

	w := serve(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Prison admin")

	w = serve(router, http.MethodPost, "/no-such-route", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

const publicDir = "../../public"

// pageCall matches the request path passed to fetch or the page helpers.
var pageCall = regexp.MustCompile("(?:fetch|getJSON|postJSON)\\(\\s*['\"`](/[^'\"`$?]*)")

func pagePaths(t *testing.T) map[string]bool {
	t.Helper()

	scripts, err := filepath.Glob(filepath.Join(publicDir, "*.js"))
	require.NoError(t, err)
	require.NotEmpty(t, scripts)

	paths := map[string]bool{}
	for _, script := range scripts {
		src, err := os.ReadFile(script)
		require.NoError(t, err)
		for _, m := range pageCall.FindAllStringSubmatch(string(src), -1) {
			paths[strings.TrimSuffix(m[1], "/")] = true
		}
	}
	return paths
}

// routeFor finds the registered route a page path resolves to. Paths built
// from a template end where the parameter starts.
func routeFor(routes gin.RoutesInfo, path string) (gin.RouteInfo, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
		if i := strings.Index(r.Path, "/:"); i > 0 && r.Path[:i] == path {
			return r, true
		}
	}
	return gin.RouteInfo{}, false
}

func TestPagesCallRegisteredRoutes(t *testing.T) {
	router, _ := newTestRouter(t, publicDir)
	routes := router.Routes()

	paths := pagePaths(t)
	for path := range paths {
		_, ok := routeFor(routes, path)
		assert.True(t, ok, "page calls unregistered route %s", path)
	}

	for _, want := range []string{
		"/check-db-connection", "/init-db", "/insert-data",
		"/inmates", "/add-inmate", "/add-complete-inmate", "/remove-inmate", "/transfer-inmate",
		"/inmates-leaving-soon", "/inmates-count-by-cell", "/crowded-cells",
		"/high-severity-prisons", "/inmates-all-cells",
		"/medical-data", "/medical-records", "/add-medical", "/medical-joined",
	} {
		assert.True(t, paths[want], "no page calls %s", want)
	}
}

func TestShippedPagesAreServed(t *testing.T) {
	router, _ := newTestRouter(t, publicDir)

	for page, script := range map[string]string{"/": "scripts.js", "/medical.html": "medical.js"} {
		w := serve(router, http.MethodGet, page, "")
		require.Equal(t, http.StatusOK, w.Code, page)
		assert.Contains(t, w.Body.String(), script)
		assert.Contains(t, w.Body.String(), "common.js")
	}
}
