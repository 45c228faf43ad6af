package models

// AuthResponse is the success payload returned by registration and login.
// It carries the public view of the user plus the issued token(s).
// RefreshToken is present only when refresh support is configured.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenResponse is the success payload of the token regeneration endpoint.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// StatusResponse is a generic acknowledgement payload used by endpoints that
// deliberately return no data (logout, password-reset request).
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the structured failure payload. Error holds a stable,
// enumerable message; Fields lists per-field validation failures when input
// validation was the cause. No internal detail is ever surfaced here.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}
