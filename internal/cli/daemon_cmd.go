package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/suntray-io/suntray/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the Suntray supervisor",
	Long:  `Manage the suntrayd supervisor process.`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the supervisor",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the supervisor",
	RunE:  runDaemonStop,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show supervisor status",
	RunE:  runDaemonStatus,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("suntrayd is already running (PID %d).\n", info.PID)
		return nil
	}

	// Clean up stale daemon info if it exists
	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	fmt.Print("Starting suntrayd...")
	if err := startDaemon(); err != nil {
		fmt.Println()
		return err
	}

	_, freshInfo, err := config.IsDaemonRunning()
	if err != nil || freshInfo == nil {
		fmt.Println(" started.")
		return nil
	}

	fmt.Printf(" started (PID %d).\n", freshInfo.PID)
	return nil
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	client, conn, err := daemonClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := rpcContext()
	defer cancel()

	if _, err := client.Shutdown(ctx, &emptypb.Empty{}); err != nil {
		return fmt.Errorf("failed to request shutdown: %w", err)
	}

	// Wait for the PID file to disappear
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		running, _, err := config.IsDaemonRunning()
		if err == nil && !running {
			fmt.Println("suntrayd stopped.")
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println(render(styleError, "suntrayd did not stop in time."))
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if !running || info == nil {
		fmt.Println(render(styleStopped, "suntrayd is not running."))
		return nil
	}

	fmt.Printf("suntrayd running (PID %d, since %s).\n",
		info.PID, info.StartedAt.Local().Format(time.RFC1123))
	return runStatus(cmd, args)
}

// suntraydPath locates the supervisor binary: next to the CLI binary first,
// then PATH.
func suntraydPath() string {
	exe, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "suntrayd")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate
		}
	}
	return "suntrayd"
}

// startDaemon spawns suntrayd detached and waits for it to report ready.
func startDaemon() error {
	launch := exec.Command(suntraydPath())
	launch.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := launch.Start(); err != nil {
		return fmt.Errorf("failed to launch suntrayd: %w", err)
	}
	_ = launch.Process.Release()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if running, _, err := config.IsDaemonRunning(); err == nil && running {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("suntrayd did not report ready, check the log")
}
