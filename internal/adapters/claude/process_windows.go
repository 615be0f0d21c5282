//go:build windows

package claude

import "os/exec"

func setupProcessGroup(*exec.Cmd) {}
