package cmd

import (
	"fmt"
	"os"

	"DBDashboard/internal/startup"

	"github.com/spf13/cobra"
)

var (
	configPath string
	pidFile    = "/var/run/dbdashboard.pid"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dbdashboard",
	Short: "A database management dashboard service",
	Long: `DBDashboard serves the view model of a database management dashboard:
connection cards, saved queries, metric charts and an exportable audit log.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&pidFile, "pid-file", pidFile, "Path to the PID file")
}
