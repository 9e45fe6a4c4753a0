package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("internal call unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("peer internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidBaseURL = errors.New("invalid peer address")
)
