package models

// HealthStatus is the static liveness payload served by GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

// APIInfo describes the API version and its top-level endpoints.
type APIInfo struct {
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ViewInfo is the public description of a catalog view returned by
// GET /api/v1/views.
type ViewInfo struct {
	Route        string   `json:"route"`
	Projection   []string `json:"projection"`
	RequiresAuth bool     `json:"requires_auth"`
}

// ErrorResponse is the body of every non-validation error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse is the 422 body listing every invalid parameter.
type ValidationErrorResponse struct {
	Detail string            `json:"detail"`
	Errors []FieldErrorEntry `json:"errors"`
}

// FieldErrorEntry describes one invalid request parameter.
type FieldErrorEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}
