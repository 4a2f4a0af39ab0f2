// Package health exposes the standard gRPC health service for the shop.
package health

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name reported alongside the overall ("") status.
const Service = "foodcart.Shop"

type Server struct {
	grpc *grpc.Server
	hs   *health.Server
}

// New starts in NOT_SERVING; call SetServing once the store is open.
func New() *Server {
	s := &Server{grpc: grpc.NewServer(), hs: health.NewServer()}
	healthpb.RegisterHealthServer(s.grpc, s.hs)
	s.SetServing(false)
	return s
}

func (s *Server) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.hs.SetServingStatus("", st)
	s.hs.SetServingStatus(Service, st)
}

// Serve blocks until the listener fails or Stop is called.
func (s *Server) Serve(l net.Listener) error {
	return s.grpc.Serve(l)
}

// Stop marks the service down and drains in-flight checks.
func (s *Server) Stop(ctx context.Context) {
	s.hs.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpc.Stop()
	}
}
