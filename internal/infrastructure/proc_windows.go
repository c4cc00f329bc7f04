//go:build windows

package infrastructure

import "os/exec"

// configureProcessGroup is a no-op on Windows: CommandContext's default kill
// terminates the direct child, and yt-dlp tears down its own helpers.
func configureProcessGroup(cmd *exec.Cmd) {}
