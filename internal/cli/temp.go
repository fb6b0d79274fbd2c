package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/suntray-io/suntray/internal/daemon/server"
	"github.com/suntray-io/suntray/internal/tui"
)

var tempCmd = &cobra.Command{
	Use:   "temp [kelvin]",
	Short: "Show or set the target color temperature",
	Long: `Set the target color temperature in Kelvin. Values outside the
supported range are clamped. Without an argument, an interactive adjuster
opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemp,
}

func runTemp(cmd *cobra.Command, args []string) error {
	client, conn, err := daemonClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	if len(args) == 0 {
		return runTempInteractive(client)
	}

	kelvin, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid temperature %q: %w", args[0], err)
	}

	ctx, cancel := rpcContext()
	defer cancel()

	status, err := client.SetTemperature(ctx, &server.SetTemperatureRequest{Kelvin: int32(kelvin)})
	if err != nil {
		return fmt.Errorf("failed to set temperature: %w", err)
	}

	fmt.Printf("%s\n", render(styleSuccess, fmt.Sprintf("Temperature set to %dK.", status.Temperature)))
	if int32(kelvin) != status.Temperature {
		fmt.Printf("%s\n", render(styleHint, fmt.Sprintf("(%d was clamped to the supported range)", kelvin)))
	}
	return nil
}

func runTempInteractive(client server.DaemonServiceClient) error {
	ctx, cancel := rpcContext()
	defer cancel()

	status, err := client.GetStatus(ctx, &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	kelvin, accepted, err := tui.Run(int(status.Temperature))
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}

	applyCtx, applyCancel := rpcContext()
	defer applyCancel()

	applied, err := client.SetTemperature(applyCtx, &server.SetTemperatureRequest{Kelvin: int32(kelvin)})
	if err != nil {
		return fmt.Errorf("failed to set temperature: %w", err)
	}

	fmt.Printf("%s\n", render(styleSuccess, fmt.Sprintf("Temperature set to %dK.", applied.Temperature)))
	return nil
}
