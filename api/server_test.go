package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"material-quantity/core/types"
)

func newTestServer() *Server {
	return NewServer("test", 10)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestResolveEndpoint(t *testing.T) {
	waste := 10.0
	w := postJSON(t, newTestServer(), "/v1/resolve", types.ResolverInput{
		MaterialName: "Interior Wall Paint",
		InputUnit:    "sq ft",
		InputValue:   700,
		WastePercent: &waste,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res types.Resolution
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !res.Success || res.GrossQuantity != 3 || res.ResolvedUnit != "gallon" {
		t.Errorf("unexpected resolution: %+v", res)
	}
}

// TestResolveEndpointDomainFailureIs200 proves unresolvable materials
// are valid outcomes, not transport errors.
func TestResolveEndpointDomainFailureIs200(t *testing.T) {
	w := postJSON(t, newTestServer(), "/v1/resolve", types.ResolverInput{
		MaterialName: "Exotic Widget Coating",
		InputUnit:    "sq ft",
		InputValue:   100,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for domain failure", w.Code)
	}

	var res types.Resolution
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Success {
		t.Errorf("expected failed resolution, got %+v", res)
	}
	if res.Confidence != types.ConfidenceFailed {
		t.Errorf("Confidence = %s, want failed", res.Confidence)
	}
}

func TestResolveEndpointRejectsNegativeValue(t *testing.T) {
	w := postJSON(t, newTestServer(), "/v1/resolve", types.ResolverInput{
		MaterialName: "Paint",
		InputUnit:    "sq ft",
		InputValue:   -1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBatchEndpoint(t *testing.T) {
	paintQty := 700.0
	req := BatchRequest{
		BaseArea: 400,
		Materials: []*types.MaterialItem{
			{Name: "Interior Wall Paint", BaseQuantity: &paintQty, Unit: "sq ft"},
			{Name: "Exotic Widget Coating"},
		},
	}

	w := postJSON(t, newTestServer(), "/v1/resolve/batch", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp BatchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Resolved) != 1 || len(resp.Failed) != 1 {
		t.Errorf("partition = %d/%d, want 1 resolved + 1 failed", len(resp.Resolved), len(resp.Failed))
	}
	if !strings.Contains(resp.Summary, "1 of 2") {
		t.Errorf("summary = %q", resp.Summary)
	}
	if resp.Metadata == nil || resp.Metadata.InputHash == "" || resp.Metadata.RequestID == "" {
		t.Errorf("metadata incomplete: %+v", resp.Metadata)
	}
}

// TestBatchInputHashIsDeterministic proves identical request bodies
// fingerprint identically across invocations.
func TestBatchInputHashIsDeterministic(t *testing.T) {
	qty := 700.0
	req := BatchRequest{
		BaseArea:  400,
		Materials: []*types.MaterialItem{{Name: "Interior Wall Paint", BaseQuantity: &qty, Unit: "sq ft"}},
	}

	first := computeInputHash(&req)
	second := computeInputHash(&req)
	if first == "" || first != second {
		t.Errorf("input hash not deterministic: %q vs %q", first, second)
	}
}

func TestBatchEndpointRequiresStoreForProjects(t *testing.T) {
	req := BatchRequest{
		ProjectID: "8f9f1e7a-55e5-4f3c-9a31-5a50a0a2a111",
		BaseArea:  100,
	}
	w := postJSON(t, newTestServer(), "/v1/resolve/batch", req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no store is configured", w.Code)
	}
}

func TestCoverageEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/coverage", nil)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Rates map[string]types.CoverageRate `json:"rates"`
		Count int                           `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count == 0 || len(resp.Rates) != resp.Count {
		t.Errorf("coverage dump inconsistent: count=%d rates=%d", resp.Count, len(resp.Rates))
	}
	if _, ok := resp.Rates["paint"]; !ok {
		t.Error("coverage dump missing paint")
	}
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

// TestResolveEndpointRejectsInvalidInputs covers the request-shape
// validations that must fail before the engine runs.
func TestResolveEndpointRejectsInvalidInputs(t *testing.T) {
	waste := -50.0
	rate := 25.0
	tests := []struct {
		name string
		in   types.ResolverInput
	}{
		{"negative waste_percent", types.ResolverInput{
			MaterialName: "Interior Wall Paint",
			InputUnit:    "sq ft",
			InputValue:   700,
			WastePercent: &waste,
		}},
		{"coverage_rate without container_unit", types.ResolverInput{
			MaterialName: "Exotic Widget Coating",
			InputUnit:    "sq ft",
			InputValue:   100,
			CoverageRate: &rate,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestServer(), "/v1/resolve", tt.in)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
		})
	}
}

// TestBatchEndpointRejectsInvalidItems proves batch requests are
// validated per item, not just at the top level.
func TestBatchEndpointRejectsInvalidItems(t *testing.T) {
	negative := -5.0
	waste := -10.0
	rate := 25.0
	tests := []struct {
		name string
		req  BatchRequest
	}{
		{"negative waste_percent", BatchRequest{
			BaseArea:     100,
			WastePercent: &waste,
			Materials:    []*types.MaterialItem{{Name: "Interior Wall Paint"}},
		}},
		{"negative item base_quantity", BatchRequest{
			BaseArea:  100,
			Materials: []*types.MaterialItem{{Name: "Interior Wall Paint", BaseQuantity: &negative, Unit: "sq ft"}},
		}},
		{"item coverage_rate without container_unit", BatchRequest{
			BaseArea:  100,
			Materials: []*types.MaterialItem{{Name: "Exotic Widget Coating", CoverageRate: &rate}},
		}},
		{"null material entry", BatchRequest{
			BaseArea:  100,
			Materials: []*types.MaterialItem{nil},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestServer(), "/v1/resolve/batch", tt.req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
		})
	}
}
