package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is done or a transport fails, then shuts
	// every transport down gracefully.
	Run(ctx context.Context) error
}
