package domain

// APIResponse is the envelope every endpoint responds with, mirroring the
// upstream record source's shape so the dashboard consumes one format in
// both directions.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
