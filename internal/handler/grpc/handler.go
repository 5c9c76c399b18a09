// Package grpc exposes the standard gRPC health service. Its status follows
// the reachability of the server's database.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "formkeeper.v1.FormKeeper"

const (
	defaultProbeInterval = 10 * time.Second
	probeTimeout         = 2 * time.Second
)

// Pinger is implemented by the server storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	pinger Pinger
	health *health.Server

	logger *logger.Logger
}

// NewHandler creates a handler whose status is NOT_SERVING until the first
// successful probe.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		pinger: pinger,
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register adds the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the store once and updates the reported status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("store is not reachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// WatchReadiness probes immediately and then every interval until ctx is
// done.
func (h *Handler) WatchReadiness(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	h.Probe(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
