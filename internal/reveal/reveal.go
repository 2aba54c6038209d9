// Package reveal implements the host file-manager "reveal" action
// (§6 open_file), platform-specific and intentionally thin: it shells
// out to the OS's own file manager rather than reimplementing any of it.
package reveal

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/worksentry/worksentry/internal/wserr"
)

// File opens the host file manager with path selected/highlighted.
func File(path string) error {
	cmd, err := commandFor(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: revealing %s: %v", wserr.ErrIO, path, err)
	}
	return nil
}

func commandFor(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", "/select,"+path), nil
	case "darwin":
		return exec.Command("open", "-R", path), nil
	case "linux":
		return exec.Command("xdg-open", path), nil
	default:
		return nil, fmt.Errorf("%w: reveal is not supported on %s", wserr.ErrInvalidInput, runtime.GOOS)
	}
}
