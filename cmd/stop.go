package cmd

import (
	"fmt"
	"os"

	"DBDashboard/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the DBDashboard service",
	Long:  `Stop the running DBDashboard service.`,
	Run: func(cmd *cobra.Command, args []string) {
		pid, err := daemon.StopProcess(pidFile)
		if err != nil {
			fmt.Printf("Failed to stop DBDashboard service: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("DBDashboard service (PID: %d) has been stopped\n", pid)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
