package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyEchoMessage = errors.New("echo message is empty")
	ErrPeerUnhealthy    = errors.New("peer is unhealthy")
)
