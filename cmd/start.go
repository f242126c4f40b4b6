package cmd

import (
	"fmt"
	"os"

	"DBDashboard/internal/pkg/logger"
	"DBDashboard/internal/startup"
	"DBDashboard/internal/utils/daemon"
	"DBDashboard/internal/utils/signal"

	"github.com/spf13/cobra"
)

var (
	foreground bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the DBDashboard service",
	Long:  `Start the DBDashboard service in foreground or as a daemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		if daemon.IsRunning(pidFile) {
			fmt.Printf("DBDashboard service is already running (PID file exists at %s)\n", pidFile)
			os.Exit(1)
		}

		isChild := daemon.IsChild()
		if !foreground && !isChild {
			daemon.Daemonize(configPath, pidFile)
			return
		}

		application := startup.InitializeApplication(configPath)
		builder := startup.StartServer(application)

		// Only the detached child owns the PID file
		if isChild {
			if err := daemon.WritePIDFile(pidFile); err != nil {
				logger.Error("Failed to write PID file", logger.Err(err))
			} else {
				signal.RegisterCleanupFunc(func() {
					daemon.RemovePIDFile(pidFile)
				})
			}
		}

		signal.HandleSignals(application, builder)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (not as daemon)")
}
