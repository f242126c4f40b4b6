package daemon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"DBDashboard/internal/pkg/logger"
)

// EnvChild is set to "1" in the environment of the detached child process
const EnvChild = "DBDASHBOARD_DAEMON"

// IsChild reports whether this process was started by Daemonize
func IsChild() bool {
	return os.Getenv(EnvChild) == "1"
}

// readPID returns the PID stored in pidFile
func readPID(pidFile string) (int, error) {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// alive sends signal 0, since FindProcess always succeeds on Unix
func alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// IsRunning checks if the service is already running
func IsRunning(pidFile string) bool {
	running, _ := GetStatus(pidFile)
	return running
}

// Daemonize starts a detached copy of the service and exits the parent
func Daemonize(configPath, pidFile string) {
	executable, err := os.Executable()
	if err != nil {
		logger.Fatal("Failed to get executable path", logger.Err(err))
	}

	cmd := exec.Command(executable, childArgs(configPath, pidFile)...)
	cmd.Env = append(os.Environ(), EnvChild+"=1")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		logger.Fatal("Failed to start daemon process", logger.Err(err))
	}

	logger.Info("Started daemon process",
		logger.Int("pid", cmd.Process.Pid),
		logger.String("pid_file", pidFile))

	os.Exit(0)
}

// childArgs builds the command line of the detached child so it uses the
// same configuration and PID file as the parent
func childArgs(configPath, pidFile string) []string {
	args := []string{"start"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	if pidFile != "" {
		args = append(args, "--pid-file", pidFile)
	}
	return args
}

// WritePIDFile writes the current process ID to the specified file
func WritePIDFile(pidFile string) error {
	pid := os.Getpid()

	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return fmt.Errorf("failed to create directory for PID file: %w", err)
	}

	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	logger.Info("Wrote PID to file",
		logger.Int("pid", pid),
		logger.String("file", pidFile))
	return nil
}

// RemovePIDFile removes the PID file during shutdown
func RemovePIDFile(pidFile string) {
	if err := os.Remove(pidFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("Failed to remove PID file during shutdown",
			logger.Err(err),
			logger.String("file", pidFile))
		return
	}
	logger.Info("Removed PID file during shutdown", logger.String("file", pidFile))
}

// StopProcess sends SIGTERM to the process recorded in pidFile
func StopProcess(pidFile string) (int, error) {
	if _, err := os.Stat(pidFile); errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("service is not running (PID file not found)")
	}

	pid, err := readPID(pidFile)
	if err != nil {
		return 0, err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return 0, fmt.Errorf("failed to send terminate signal: %w", err)
	}

	if err := os.Remove(pidFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to remove PID file after stopping process",
			logger.Err(err),
			logger.String("file", pidFile))
	}

	return pid, nil
}

// GetStatus checks if the service is running and returns the PID.
// A PID file naming a dead process is removed.
func GetStatus(pidFile string) (bool, int) {
	if _, err := os.Stat(pidFile); errors.Is(err, fs.ErrNotExist) {
		return false, 0
	}

	pid, err := readPID(pidFile)
	if err != nil {
		logger.Error("Unusable PID file",
			logger.Err(err),
			logger.String("file", pidFile))
		return false, 0
	}

	if alive(pid) {
		return true, pid
	}

	os.Remove(pidFile)
	return false, 0
}
