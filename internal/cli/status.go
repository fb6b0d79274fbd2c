package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/suntray-io/suntray/internal/daemon/server"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the daemon state and target temperature",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, conn, err := daemonClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := rpcContext()
	defer cancel()

	status, err := client.GetStatus(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	printStatus(status)
	return nil
}

func printStatus(status *server.DaemonStatus) {
	if status.Running {
		fmt.Printf("%s %s\n", render(styleLabel, "State:"),
			render(styleRunning, fmt.Sprintf("running at %dK", status.Temperature)))
	} else {
		fmt.Printf("%s %s\n", render(styleLabel, "State:"), render(styleStopped, "stopped"))
		fmt.Printf("%s %s\n", render(styleLabel, "Target:"),
			render(styleValue, fmt.Sprintf("%dK", status.Temperature)))
	}

	if status.RunID != "" {
		fmt.Printf("%s %s\n", render(styleLabel, "Run:"), render(styleValue, status.RunID))
	}
	fmt.Printf("%s %s\n", render(styleLabel, "Supervisor:"),
		render(styleValue, fmt.Sprintf("PID %d, v%s", status.SupervisorPID, status.Version)))
}
