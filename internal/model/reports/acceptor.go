package reports

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"max.ks1230/expense-bot/internal/logger"
)

const serviceName = "expense.reporter"

// HealthServer exposes the standard gRPC health service for the reporter process.
type HealthServer struct {
	health *health.Server
	server *grpc.Server
	lis    net.Listener
}

func NewHealthServer(port int) (*HealthServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}

	rpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(rpcServer, hs)

	return &HealthServer{
		health: hs,
		server: rpcServer,
		lis:    lis,
	}, nil
}

func (s *HealthServer) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(serviceName, status)
	s.health.SetServingStatus("", status)
}

func (s *HealthServer) Serve() {
	logger.Info("gRPC health server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gRPC", zap.Error(err))
	}
}

func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}
