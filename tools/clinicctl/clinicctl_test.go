package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/md-rashed-zaman/clinicbook/libs/grpcx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = parseVersion("three")
	assert.EqualError(t, err, `invalid version "three"`)
	_, err = parseVersion("-2")
	assert.Error(t, err)
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "version 1", formatStatus(1, false))
	assert.Equal(t, "version 2 (dirty)", formatStatus(2, true))
}

func TestMigrateForceRejectsBadVersionBeforeConnecting(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := execute(t, "migrate", "force", "latest")
	assert.EqualError(t, err, `invalid version "latest"`)
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := execute(t, "migrate", "status")
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestHealthCommand(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpcx.NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
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

	srv.SetServing(true, "reservation-service")
	out, err := execute(t, "health", "--addr", lis.Addr().String(), "--service", "reservation-service")
	require.NoError(t, err)
	assert.Contains(t, out, "SERVING")

	srv.SetServing(false, "reservation-service")
	out, err = execute(t, "health", "--addr", lis.Addr().String(), "--service", "reservation-service")
	assert.Error(t, err)
	assert.Contains(t, out, "NOT_SERVING")
}
