package dto

// ErrorResponse is the body of every failed request.
// Kind is set for transfer failures, for example INSUFFICIENT_FUNDS.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
