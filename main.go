package main

import (
	"DBDashboard/cmd"
	"DBDashboard/internal/pkg/logger"
)

func main() {
	defer logger.Sync()
	cmd.Execute()
}
