package http

import "github.com/MKhiriev/go-internal-auth/internal/auth"

//go:generate mockgen -source=interfaces.go -destination=../../mock/guard_mock.go -package=mock

// Guard decides whether an inbound request may proceed. [auth.Guard] is the
// production implementation.
type Guard interface {
	// Enabled reports whether the handshake is switched on.
	Enabled() bool

	// Check classifies the request and, for internal calls, verifies the
	// token. A non-nil error is a rejection.
	Check(d auth.RequestDescriptor) (auth.Classification, error)
}
