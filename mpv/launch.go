package mpv

import (
	"errors"
	"os/exec"

	"github.com/user/play-gallery-cli/deps"
)

// LaunchPlay starts mpv playing a play's camera angles back to back, with
// the IPC socket enabled. The player is spawned only when the user
// activates a play, never eagerly for everything on a page.
// Returns the *exec.Cmd for the running process which can be used for cleanup.
func LaunchPlay(title string, angles []string) (*exec.Cmd, error) {
	if len(angles) == 0 {
		return nil, errors.New("mpv: play has no media angles")
	}
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	args := []string{
		"--input-ipc-server=" + DefaultSocketPath,
		"--force-window=yes",
		"--keep-open=yes",
		"--title=" + title,
	}
	args = append(args, angles...)
	cmd := exec.Command("mpv", args...)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
