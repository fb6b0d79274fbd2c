package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the color-temperature daemon",
	RunE:  runEnable,
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop the color-temperature daemon",
	RunE:  runDisable,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle the color-temperature daemon",
	RunE:  runToggle,
}

func runEnable(cmd *cobra.Command, args []string) error {
	client, conn, err := daemonClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := rpcContext()
	defer cancel()

	status, err := client.Enable(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("failed to enable: %w", err)
	}

	fmt.Printf("%s\n", render(styleSuccess, fmt.Sprintf("Enabled at %dK.", status.Temperature)))
	return nil
}

func runDisable(cmd *cobra.Command, args []string) error {
	client, conn, err := daemonClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := rpcContext()
	defer cancel()

	if _, err := client.Disable(ctx, &emptypb.Empty{}); err != nil {
		return fmt.Errorf("failed to disable: %w", err)
	}

	fmt.Printf("%s\n", render(styleValue, "Disabled."))
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
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

	if status.Running {
		return runDisable(cmd, args)
	}
	return runEnable(cmd, args)
}
