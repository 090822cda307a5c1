package grpcserver

import (
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Service name reported on the health checks.
const ServiceName = "lolscope.PlayerLookup"

// HealthServer exposes the grpc.health.v1 service of the api.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	logger zerolog.Logger
}

// NewHealthServer creates the grpc server with the health check registered.
func NewHealthServer(logger zerolog.Logger) *HealthServer {
	grpcServer := grpc.NewServer()

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		server: grpcServer,
		health: healthServer,
		logger: logger.With().Str("component", "grpc").Logger(),
	}
}

// Serve marks the service as serving and blocks until the server stops.
func (s *HealthServer) Serve(listener net.Listener) error {
	s.health.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("grpc health server running")

	return s.server.Serve(listener)
}

// Shutdown marks every service as not serving and stops gracefully.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
