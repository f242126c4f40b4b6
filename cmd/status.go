package cmd

import (
	"fmt"

	"DBDashboard/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the DBDashboard service",
	Long:  `Check if the DBDashboard service is currently running.`,
	Run: func(cmd *cobra.Command, args []string) {
		running, pid := daemon.GetStatus(pidFile)
		if running {
			fmt.Printf("DBDashboard service is running (PID: %d)\n", pid)
		} else {
			fmt.Println("DBDashboard service is not running")
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
