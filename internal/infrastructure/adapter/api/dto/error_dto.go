package dto

// ErrorResponse is the body of every failed request.
// Details carries typed error context such as the unlock time of a lock that has not expired.
type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
