package coach

import (
	"os/exec"
	"sync"

	"github.com/kballard/go-shellquote"
)

// KeepAwake stops the display from sleeping during a workout.
type KeepAwake interface {
	Acquire() error
	Release() error
}

// NoKeepAwake is a KeepAwake that does nothing.
type NoKeepAwake struct{}

func (NoKeepAwake) Acquire() error { return nil }

func (NoKeepAwake) Release() error { return nil }

// CommandKeepAwake holds an idle inhibitor such as
// "systemd-inhibit --what=idle sleep infinity" or "caffeinate -d" for as
// long as it is acquired.
type CommandKeepAwake struct {
	name string
	args []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewCommandKeepAwake parses cmd. An empty command yields NoKeepAwake.
func NewCommandKeepAwake(cmd string) (KeepAwake, error) {
	cmdSlice, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errInvalidKeepAwakeCmd.Fmt(cmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return NoKeepAwake{}, nil
	}

	return &CommandKeepAwake{
		name: cmdSlice[0],
		args: cmdSlice[1:],
	}, nil
}

// Acquire starts the inhibitor unless it is already running.
func (k *CommandKeepAwake) Acquire() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd != nil {
		return nil
	}

	cmd := exec.Command(k.name, k.args...)

	err := cmd.Start()
	if err != nil {
		return err
	}

	k.cmd = cmd

	return nil
}

// Release stops the inhibitor if it is running.
func (k *CommandKeepAwake) Release() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd == nil {
		return nil
	}

	cmd := k.cmd
	k.cmd = nil

	err := cmd.Process.Kill()

	// Wait reports the kill as an error.
	_ = cmd.Wait()

	return err
}
