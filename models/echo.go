package models

// EchoRequest is the body accepted by POST /api/internal/echo.
type EchoRequest struct {
	Message string `json:"message"`
}

// EchoResponse is what a callee reports back about a received internal call.
type EchoResponse struct {
	// Message is the echoed request message.
	Message string `json:"message"`

	// Method and Path of the received request.
	Method string `json:"method"`
	Path   string `json:"path"`

	// Rule names the classifier rule that flagged the call as internal,
	// or "none" when the call was not verified.
	Rule string `json:"rule"`

	// CallerID is the unique call-id the caller sent, if any.
	CallerID string `json:"caller_id,omitempty"`

	// TraceID is the trace id assigned to the request.
	TraceID string `json:"trace_id,omitempty"`
}

// ServiceHealth is returned by GET /api/health.
type ServiceHealth struct {
	Status string `json:"status"`

	// InternalAuth reports whether the shared-secret handshake is switched on.
	InternalAuth bool `json:"internal_auth"`
}

// PeerStatus summarises a health and version check of a peer service.
type PeerStatus struct {
	Version string        `json:"version"`
	Health  ServiceHealth `json:"health"`
}
