package entity

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}
