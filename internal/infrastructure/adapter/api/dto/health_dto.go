package dto

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Pool     any    `json:"pool,omitempty"`
}
