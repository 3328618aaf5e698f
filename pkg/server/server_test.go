package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlens/clusterlens/pkg/auditor"
	"github.com/clusterlens/clusterlens/pkg/inventory"
)

type stubRunner struct {
	mu     sync.Mutex
	report *auditor.Report
	err    error
	runs   int
}

func (r *stubRunner) Run(_ context.Context) (*auditor.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	if r.err != nil {
		return nil, r.err
	}
	return r.report, nil
}

func (r *stubRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

func testReport() *auditor.Report {
	report := auditor.NewReport("test")
	report.Inventory.Pods["pod-uid-1"] = inventory.Pod{
		UID:       "pod-uid-1",
		Name:      "web",
		Namespace: "default",
	}
	report.Inventory.Nodes["node-uid-1"] = &inventory.Node{
		UID:       "node-uid-1",
		Name:      "worker-0",
		Namespace: inventory.ClusterWideNamespace,
		Inside:    true,
	}
	return report
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	base := []Option{WithName("clusterlens-test"), WithVersion("v0.0.0-test")}
	return New(append(base, opts...)...)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	handler := s.routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "clusterlens-test", resp.Name)
	assert.Equal(t, "v0.0.0-test", resp.Version)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestReadyBeforeAndAfterFirstAudit(t *testing.T) {
	s := newTestServer(t)
	handler := s.routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, CodeServiceUnavailable, errResp.Code)
	assert.True(t, errResp.Retryable)
	assert.NotEmpty(t, errResp.RequestID)

	s.setReport(testReport())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInventoryEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.setReport(testReport())
	handler := s.routes()

	t.Run("full report", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=")

		var report auditor.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, auditor.KindReport, report.Kind)
		assert.Len(t, report.Inventory.Pods, 1)
		assert.Len(t, report.Inventory.Nodes, 1)
	})

	t.Run("pods subset", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory?kind=pods", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var pods map[string]inventory.Pod
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pods))
		require.Contains(t, pods, "pod-uid-1")
		assert.Equal(t, "web", pods["pod-uid-1"].Name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory?kind=secrets", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, CodeInvalidRequest, errResp.Code)
		assert.False(t, errResp.Retryable)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/inventory", nil))

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
	})
}

func TestInventoryBeforeFirstAudit(t *testing.T) {
	s := newTestServer(t)
	handler := s.routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, CodeServiceUnavailable, errResp.Code)
	assert.True(t, errResp.Retryable)
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	s := newTestServer(t, WithConfig(cfg))
	s.setReport(testReport())
	handler := s.routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inventory", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, CodeRateLimitExceeded, errResp.Code)
	assert.True(t, errResp.Retryable)
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t)
	handler := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}

func TestDefaultRouteListsEndpoints(t *testing.T) {
	s := newTestServer(t)
	handler := s.routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["endpoints"], "/v1/inventory")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuditLoopRunsOnceWithoutInterval(t *testing.T) {
	runner := &stubRunner{report: testReport()}
	cfg := DefaultConfig()
	cfg.AuditInterval = 0
	s := newTestServer(t, WithConfig(cfg), WithRunner(runner))

	require.NoError(t, s.auditLoop(context.Background()))
	assert.Equal(t, 1, runner.runCount())

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.True(t, s.ready)
	require.NotNil(t, s.latest)
	assert.Len(t, s.latest.Inventory.Pods, 1)
}

func TestAuditLoopKeepsPreviousReportOnFailure(t *testing.T) {
	runner := &stubRunner{report: testReport()}
	cfg := DefaultConfig()
	cfg.AuditInterval = 0
	s := newTestServer(t, WithConfig(cfg), WithRunner(runner))

	require.NoError(t, s.auditLoop(context.Background()))
	require.NotNil(t, s.latest)

	runner.mu.Lock()
	runner.err = errors.New("cluster unreachable")
	runner.mu.Unlock()

	s.runAudit(context.Background())

	s.mu.RLock()
	defer s.mu.RUnlock()
	require.NotNil(t, s.latest)
	assert.Len(t, s.latest.Inventory.Pods, 1)
}

func TestAuditLoopRepeatsOnInterval(t *testing.T) {
	runner := &stubRunner{report: testReport()}
	cfg := DefaultConfig()
	cfg.AuditInterval = 10 * time.Millisecond
	s := newTestServer(t, WithConfig(cfg), WithRunner(runner))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := s.auditLoop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, runner.runCount(), 2)
}

func TestRunRequiresRunner(t *testing.T) {
	s := newTestServer(t)
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audit runner")
}
