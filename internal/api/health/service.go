package health

import (
	"context"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Faizanmoriani2/bignote/pkg/grpcx"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

// ServiceName is the health-check name of the notes API.
const ServiceName = "bignote.notes.v1"

const pingTimeout = 2 * time.Second

var _ grpcx.Service = (*Service)(nil)

type pinger interface {
	Ping(ctx context.Context) error
}

// Service answers grpc health checks by pinging the note store.
type Service struct {
	healthpb.UnimplementedHealthServer

	store pinger
}

func New(store pinger) *Service {
	return &Service{store: store}
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, s)

	if srv, ok := r.(reflection.GRPCServer); ok {
		reflection.Register(srv)
	}
}

func (s *Service) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVICE_UNKNOWN}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		slogx.Warn(ctx, "health check: store unreachable", slogx.Err(err))
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
