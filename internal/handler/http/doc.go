// Package http implements the callee side of internal calls over HTTP.
//
// It exposes route wiring, request handlers and middleware. Trace ids and
// access logging run on every request; the internal auth middleware runs
// only on the configured protected path patterns and only while the shared
// secret handshake is switched on. Rejected calls are answered with 401 and
// a JSON [models.Result] body and never reach the route handler.
package http
