package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-form-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-form-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}
	g.listener = listener
	return nil
}

// serve blocks until the server stops. The health status is probed for as
// long as ctx lives.
func (g *grpcServer) serve(ctx context.Context) error {
	go g.handler.WatchReadiness(ctx, 0)

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("Launching GRPC server")
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
