package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/queue"
	"github.com/reportline/reportline/pkg/services"
	testdb "github.com/reportline/reportline/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPool is a PoolStatus double.
type stubPool struct {
	healthy   bool
	cancelled []string
}

func (p *stubPool) Health() *queue.PoolHealth {
	return &queue.PoolHealth{IsHealthy: p.healthy, DBReachable: true, PodID: "test-pod"}
}

func (p *stubPool) CancelJob(jobID string) bool {
	p.cancelled = append(p.cancelled, jobID)
	return true
}

type testServer struct {
	router *gin.Engine
	pool   *stubPool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)
	require.NoError(t, services.SeedBuiltins(context.Background(), client.Client))

	agents := services.NewAgentService(client.Client, nil)
	domains := services.NewDomainService(client.Client, agents, nil)
	jobs := services.NewJobService(client.Client)
	pool := &stubPool{healthy: true}

	srv := NewServer(Deps{
		DB:      client,
		Agents:  agents,
		Domains: domains,
		Jobs:    jobs,
		Pool:    pool,
	})
	return &testServer{router: srv.Router(), pool: pool}
}

// doJSON performs a request with an optional JSON body and tenant header.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.NotNil(t, body["database"])
	assert.NotNil(t, body["queue"])
}

func TestHealthEndpointUnhealthyPool(t *testing.T) {
	ts := newTestServer(t)
	ts.pool.healthy = false

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/health", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decodeBody(t, rec)["status"])
}

func TestStreamDisabledWithoutBroker(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/jobs/some-job/stream", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTenantHeaderDefaulting(t *testing.T) {
	ts := newTestServer(t)

	// Without a header the request lands in the default tenant, which still
	// sees the built-in system agents.
	rec := ts.doJSON(t, http.MethodGet, "/api/v1/agents", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	agents := decodeBody(t, rec)["agents"].([]any)
	assert.NotEmpty(t, agents)
}
