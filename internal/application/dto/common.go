package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse body for operations whose only payload is a notice.
type MessageResponse struct {
	Message string `json:"message"`
}
