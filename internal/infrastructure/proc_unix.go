//go:build !windows

package infrastructure

import (
	"os"
	"os/exec"
	"syscall"
)

// configureProcessGroup places the child in its own process group and makes
// context cancellation kill the whole group, so yt-dlp's own children
// (ffmpeg post-processors) never outlive a cancelled download.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return os.ErrProcessDone
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
