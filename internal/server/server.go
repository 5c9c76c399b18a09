package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/handler"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var errNoServersAreCreated = errors.New("no servers are created")

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// Run binds every listener first, so a busy port fails before anything is
// served.
func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.serve(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.shutdown(shutdownCtx)

		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) listen() error {
	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.listen())
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.listen())
	}

	err := errors.Join(errs...)
	if err != nil {
		if s.httpServer != nil && s.httpServer.listener != nil {
			s.httpServer.listener.Close()
		}
		if s.gRPCServer != nil && s.gRPCServer.listener != nil {
			s.gRPCServer.listener.Close()
		}
	}
	return err
}

func (s *server) shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown(ctx)
	}
}
