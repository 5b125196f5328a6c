package models

// HealthCheckResponse is returned by the /health endpoint.
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
