package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var acmeHeaders = map[string]string{HeaderTenantID: "acme", HeaderUserID: "user-1"}

func agentBody(id string) map[string]any {
	return map[string]any{
		"agent_id":      id,
		"name":          "Test " + id,
		"agent_class":   "ingestion",
		"system_prompt": "Classify the report.",
		"output_schema": map[string]string{"category": "string"},
	}
}

func TestAgentCRUD(t *testing.T) {
	ts := newTestServer(t)

	// Create
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/agents", agentBody("triage"), acmeHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	assert.Equal(t, "triage", created["agent_id"])
	assert.Equal(t, "acme", created["tenant_id"])

	// Duplicate
	rec = ts.doJSON(t, http.MethodPost, "/api/v1/agents", agentBody("triage"), acmeHeaders)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Get
	rec = ts.doJSON(t, http.MethodGet, "/api/v1/agents/triage", nil, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update bumps version
	body := agentBody("triage")
	body["system_prompt"] = "Updated."
	rec = ts.doJSON(t, http.MethodPut, "/api/v1/agents/triage", body, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decodeBody(t, rec)["version"])

	// Another tenant does not see it
	rec = ts.doJSON(t, http.MethodGet, "/api/v1/agents/triage", nil, map[string]string{HeaderTenantID: "other"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete
	rec = ts.doJSON(t, http.MethodDelete, "/api/v1/agents/triage", nil, acmeHeaders)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.doJSON(t, http.MethodGet, "/api/v1/agents/triage", nil, acmeHeaders)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAgentValidationRejected(t *testing.T) {
	ts := newTestServer(t)

	body := agentBody("bad")
	body["agent_class"] = "synthesis"
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/agents", body, acmeHeaders)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "agent_class")
}

func TestBuiltinAgentImmutableOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	headers := map[string]string{HeaderTenantID: "system"}
	rec := ts.doJSON(t, http.MethodPut, "/api/v1/agents/report-triage", agentBody("report-triage"), headers)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.doJSON(t, http.MethodDelete, "/api/v1/agents/report-triage", nil, headers)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDomainCRUD(t *testing.T) {
	ts := newTestServer(t)

	// A domain referencing only built-in agents validates against the
	// system-tenant underlay.
	body := map[string]any{
		"domain_id": "support",
		"name":      "Support",
		"ingestion_playbook": map[string]any{
			"nodes": []string{"report-triage"},
			"edges": []any{},
		},
		"query_playbook": map[string]any{
			"nodes": []string{"incident-answer"},
			"edges": []any{},
		},
		"management_playbook": map[string]any{
			"nodes": []string{"incident-digest"},
			"edges": []any{},
		},
	}
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/domains", body, acmeHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.doJSON(t, http.MethodGet, "/api/v1/domains/support", nil, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)

	// List includes the tenant domain plus the built-in one.
	rec = ts.doJSON(t, http.MethodGet, "/api/v1/domains", nil, acmeHeaders)
	require.Equal(t, http.StatusOK, rec.Code)
	domains := decodeBody(t, rec)["domains"].([]any)
	assert.GreaterOrEqual(t, len(domains), 2)

	// A playbook with a class mismatch is rejected.
	body["domain_id"] = "bad"
	body["management_playbook"] = map[string]any{
		"nodes": []string{"incident-answer"},
		"edges": []any{},
	}
	rec = ts.doJSON(t, http.MethodPost, "/api/v1/domains", body, acmeHeaders)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
