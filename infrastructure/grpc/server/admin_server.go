package server

import (
	"chat-live/observability"
	"context"
	"errors"
	"log/slog"
	"net"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	AdminServiceName = "chatlive.admin.v1.Admin"
	StatsMethod      = "/" + AdminServiceName + "/Stats"
)

type StatsProvider interface {
	Stats() observability.Stats
}

// AdminServer exposes health, reflection and the session counters to operators.
// It never carries chat traffic.
type AdminServer struct {
	log    *slog.Logger
	stats  StatsProvider
	health *health.Server
	server *grpc.Server
}

type adminService interface {
	Stats(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
}

func NewAdminServer(log *slog.Logger, stats StatsProvider) *AdminServer {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	a := &AdminServer{log: log, stats: stats, health: health.NewServer(), server: s}

	healthpb.RegisterHealthServer(s, a.health)
	s.RegisterService(&adminServiceDesc, a)
	reflection.Register(s)
	a.health.SetServingStatus(AdminServiceName, healthpb.HealthCheckResponse_SERVING)
	return a
}

// Serve blocks until the listener fails or the server is stopped.
func (a *AdminServer) Serve(listener net.Listener) error {
	a.log.Info("Starting admin gRPC server", "address", listener.Addr().String())
	for name := range a.server.GetServiceInfo() {
		a.log.Debug("gRPC exposed service", "name", name)
	}
	if err := a.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// MarkNotServing flips every health status, load balancers stop sending traffic.
func (a *AdminServer) MarkNotServing() {
	a.health.Shutdown()
}

func (a *AdminServer) GracefulStop() {
	a.MarkNotServing()
	a.server.GracefulStop()
}

func (a *AdminServer) Stats(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats := a.stats.Stats()
	out, err := structpb.NewStruct(map[string]any{
		"online_users": stats.OnlineUsers,
		"connects":     stats.Connects,
		"disconnects":  stats.Disconnects,
		"routed":       stats.Routed,
		"dropped":      stats.Dropped,
		"uptime":       stats.Uptime,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "stats: %v", err)
	}
	return out, nil
}

var adminServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*adminService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Stats", Handler: statsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "admin.proto",
}

func statsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(adminService).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(adminService).Stats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
