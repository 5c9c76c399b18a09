package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/config"
)

// serverVersion answers GET /api/version with the configured release tag.
type serverVersion string

// NewAppInfoService fails when APP_VERSION is blank, so a server is never
// started without a version to report to clients.
func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return serverVersion(version), nil
}

func (v serverVersion) GetAppVersion(context.Context) string {
	return string(v)
}
