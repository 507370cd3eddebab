// Package api - Request and response types
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"material-quantity/core/resolver"
	"material-quantity/core/types"
)

// BatchRequest is the POST /v1/resolve/batch payload.
type BatchRequest struct {
	// ProjectID optionally binds the batch to a stored project; when
	// set, the project's versioning gate is consulted and resolved
	// materials are written back to the store.
	ProjectID string `json:"project_id,omitempty"`

	// BaseArea is the fallback input value for items without a quantity
	BaseArea float64 `json:"base_area"`

	// WastePercent is the batch waste buffer; nil means the configured
	// default
	WastePercent *float64 `json:"waste_percent,omitempty"`

	// Materials are the items to resolve
	Materials []*types.MaterialItem `json:"materials"`
}

// BatchResponse is the batch resolution result plus audit metadata.
type BatchResponse struct {
	Resolved   []*types.MaterialItem `json:"resolved"`
	Failed     []*types.MaterialItem `json:"failed"`
	Summary    string                `json:"summary"`
	Confidence types.ConfidenceLevel `json:"confidence"`
	Metadata   *ResponseMetadata     `json:"metadata,omitempty"`
}

// ResponseMetadata carries audit fields on batch responses.
type ResponseMetadata struct {
	// RequestID identifies this invocation
	RequestID string `json:"request_id"`

	// InputHash is the deterministic fingerprint of the request body;
	// identical inputs always produce identical hashes and, because
	// resolution is pure, identical results
	InputHash string `json:"input_hash"`

	// EngineVersion is the server build version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the wall-clock processing time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fromBatchResult maps an engine result onto the response shape.
func fromBatchResult(r resolver.BatchResult) *BatchResponse {
	return &BatchResponse{
		Resolved:   r.Resolved,
		Failed:     r.Failed,
		Summary:    r.Summary,
		Confidence: r.Confidence,
	}
}

// computeInputHash fingerprints a request deterministically. JSON
// marshaling of the typed struct is canonical enough here: field order
// is fixed by the struct definition.
func computeInputHash(req *BatchRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
