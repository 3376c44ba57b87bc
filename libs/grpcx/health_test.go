package grpcx

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/md-rashed-zaman/clinicbook/libs/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, lis)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return srv, lis.Addr().String()
}

func TestHealthServer(t *testing.T) {
	srv, addr := startServer(t)
	srv.SetServing(true, "clinicbook.reservation")

	conn, err := Dial(addr, DialOptions{})
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	status, err := CheckHealth(ctx, conn, "")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status)

	status, err = CheckHealth(ctx, conn, "clinicbook.reservation")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status)

	srv.SetServing(false, "clinicbook.reservation")
	status, err = CheckHealth(ctx, conn, "clinicbook.reservation")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status)

	_, err = CheckHealth(ctx, conn, "unknown.service")
	assert.Error(t, err)
}

func TestRequestIDPropagation(t *testing.T) {
	_, addr := startServer(t)

	conn, err := Dial(addr, DialOptions{})
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	ctx = httpx.ContextWithRequestID(ctx, "req-from-http")

	var header metadata.MD
	_, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-from-http"}, header.Get(RequestIDMetadataKey))
}
