package cli

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/suntray-io/suntray/internal/config"
	"github.com/suntray-io/suntray/internal/daemon/server"
)

// rpcTimeout bounds every control-socket call made by the CLI.
const rpcTimeout = 5 * time.Second

// connectDaemon establishes a gRPC connection to the running supervisor.
func connectDaemon() (*grpc.ClientConn, error) {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return nil, fmt.Errorf("failed to check daemon status: %w", err)
	}
	if !running || info == nil {
		return nil, fmt.Errorf("suntrayd is not running (start it with 'suntray daemon start')")
	}

	conn, err := grpc.NewClient("unix://"+info.Socket,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to suntrayd: %w", err)
	}

	return conn, nil
}

// daemonClient returns a connected DaemonService client. Callers must close
// the returned connection.
func daemonClient() (server.DaemonServiceClient, *grpc.ClientConn, error) {
	conn, err := connectDaemon()
	if err != nil {
		return nil, nil, err
	}
	return server.NewDaemonServiceClient(conn), conn, nil
}

func rpcContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), rpcTimeout)
}
