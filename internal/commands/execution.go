package commands

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ViewerCommand returns the command that opens path with the platform's default viewer
func ViewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// OpenInViewer launches the platform viewer for path without waiting for it
func OpenInViewer(path string) error {
	name, args := ViewerCommand(runtime.GOOS, path)

	viewer := exec.Command(name, args...) //nolint:gosec // Path is the generated report
	if err := viewer.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return viewer.Process.Release()
}
