package server

import (
	"chat-live/observability"
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type fixedStats observability.Stats

func (f fixedStats) Stats() observability.Stats { return observability.Stats(f) }

func startAdmin(t *testing.T, stats StatsProvider) (*AdminServer, *grpc.ClientConn) {
	t.Helper()
	listener := bufconn.Listen(1 << 20)
	admin := NewAdminServer(logs.GetLoggerFromLevel(slog.LevelDebug), stats)
	go func() { _ = admin.Serve(listener) }()
	t.Cleanup(admin.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return admin, conn
}

func TestAdminServer_Health(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	admin, conn := startAdmin(t, fixedStats{})
	client := healthpb.NewHealthClient(conn)

	// Given a running admin server, both the server and the admin service are serving
	for _, service := range []string{"", AdminServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		req.NoError(err)
		req.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	// When shutdown starts
	admin.MarkNotServing()

	// Then health reports not serving
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestAdminServer_Stats(t *testing.T) {
	req := require.New(t)
	_, conn := startAdmin(t, fixedStats{
		OnlineUsers: 2,
		Connects:    5,
		Disconnects: 3,
		Routed:      40,
		Dropped:     1,
		Uptime:      "1m0s",
	})

	out := &structpb.Struct{}
	req.NoError(conn.Invoke(context.Background(), StatsMethod, &emptypb.Empty{}, out))

	fields := out.AsMap()
	req.Equal(float64(2), fields["online_users"])
	req.Equal(float64(5), fields["connects"])
	req.Equal(float64(3), fields["disconnects"])
	req.Equal(float64(40), fields["routed"])
	req.Equal(float64(1), fields["dropped"])
	req.Equal("1m0s", fields["uptime"])
}
