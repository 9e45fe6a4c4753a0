package models

// Result is the JSON body of every error response.
type Result struct {
	// Code mirrors the HTTP status code of the response.
	Code int `json:"code"`

	// Message is a short human readable description.
	Message string `json:"message"`
}

// NewResult builds a Result.
func NewResult(code int, message string) Result {
	return Result{Code: code, Message: message}
}
