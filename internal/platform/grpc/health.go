package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthPollInitial = 250 * time.Millisecond
	healthPollMax     = time.Second
)

// WaitUntilServing polls the standard gRPC health service until it reports
// SERVING or the context ends.
func WaitUntilServing(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	wait := healthPollInitial
	for {
		checkCtx, cancel := context.WithTimeout(ctx, time.Second)
		resp, err := client.Check(checkCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		switch {
		case err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			if logf != nil {
				logf("backend health check is SERVING")
			}
			return nil
		case err != nil:
			if logf != nil {
				logf("waiting for backend health: %v", err)
			}
		default:
			if logf != nil {
				logf("waiting for backend health: status %s", resp.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for backend health: %w", ctx.Err())
		case <-time.After(wait):
		}
		if wait < healthPollMax {
			wait *= 2
			if wait > healthPollMax {
				wait = healthPollMax
			}
		}
	}
}
