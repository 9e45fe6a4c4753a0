package service

import (
	"context"

	"github.com/MKhiriev/go-internal-auth/models"
)

// AppInfoService reports static facts about the running callee.
type AppInfoService interface {
	// GetAppVersion returns the configured version, falling back to the
	// build version.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the build metadata embedded into the binary.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
