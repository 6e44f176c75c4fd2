package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReportAndInspect(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"domain_id": "incidents",
		"input":     "Checkout latency spiked at 09:20.",
		"extra":     map[string]any{"source": "pager"},
	}
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/reports", body, acmeHeaders)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	submitted := decodeBody(t, rec)
	jobID, _ := submitted["job_id"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, "pending", submitted["status"])

	rec = ts.doJSON(t, http.MethodGet, "/api/v1/jobs/"+jobID, nil, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)
	job := decodeBody(t, rec)
	assert.Equal(t, "ingestion", job["kind"])
	assert.Equal(t, "incidents", job["domain_id"])

	// Tenant scoping: another tenant cannot see the job.
	rec = ts.doJSON(t, http.MethodGet, "/api/v1/jobs/"+jobID, nil, map[string]string{HeaderTenantID: "other"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitJobValidation(t *testing.T) {
	ts := newTestServer(t)

	// Missing input text fails binding.
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/queries", map[string]any{"domain_id": "incidents"}, acmeHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown domain is rejected before a job row exists.
	rec = ts.doJSON(t, http.MethodPost, "/api/v1/reports", map[string]any{
		"domain_id": "nonexistent",
		"input":     "report",
	}, acmeHeaders)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelJob(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/queries", map[string]any{
		"domain_id": "incidents",
		"input":     "How many incidents this month?",
	}, acmeHeaders)
	require.Equal(t, http.StatusAccepted, rec.Code)
	jobID := decodeBody(t, rec)["job_id"].(string)

	rec = ts.doJSON(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decodeBody(t, rec)["status"])
	assert.Contains(t, ts.pool.cancelled, jobID)

	// Cancelling a terminal job is a validation error.
	rec = ts.doJSON(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil, acmeHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMissingArtifacts(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/incidents/nope", nil, acmeHeaders)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.doJSON(t, http.MethodGet, "/api/v1/answers/nope", nil, acmeHeaders)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
