package dto

// RequestCodeRequest body for POST /api/auth/request-code.
type RequestCodeRequest struct {
	Email string `json:"email"`
}

// VerifyCodeRequest body for POST /api/auth/verify.
type VerifyCodeRequest struct {
	Code string `json:"code"`
}

// VerifyCodeResponse successful verification: session token + identity.
type VerifyCodeResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// SessionResponse current signed-in state for GET /api/auth/session.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
