//go:build unix

package client

import "golang.org/x/sys/unix"

// ProcessGroupInterrupter signals SIGINT to the caller's process group,
// matching the standard multi-process terminal contract. Delivery is
// fire-and-forget.
type ProcessGroupInterrupter struct{}

// Interrupt sends SIGINT to the process group.
func (ProcessGroupInterrupter) Interrupt() {
	_ = unix.Kill(0, unix.SIGINT)
}
