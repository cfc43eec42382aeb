package hdn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hdn-nix/hdn/debug"
)

const (
	DefaultSwitchCommand = "home-manager"
	ShowTraceFlag        = "--show-trace"
)

// SwitchOptions describe the command activating a new generation. The zero
// value runs `home-manager switch` attached to the process output.
type SwitchOptions struct {
	Command   string
	Args      []string
	ShowTrace bool

	Stdout, Stderr io.Writer
}

func (o *SwitchOptions) argv() (string, []string) {
	name, args := o.Command, o.Args
	if name == "" {
		name = DefaultSwitchCommand
		if args == nil {
			args = []string{"switch"}
		}
	}
	args = append([]string{}, args...)
	if o.ShowTrace {
		args = append(args, ShowTraceFlag)
	}
	return name, args
}

// Switch runs the switch command and waits for it.
func Switch(ctx context.Context, o *SwitchOptions) error {
	name, args := o.argv()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = o.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = o.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if debug.Switch() {
		debug.Logf("running %s %s\n", name, args)
	}
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %s exited with status %d", ErrSwitchUnsuccessful, name, exitErr.ExitCode())
	}
	return fmt.Errorf("%w %s: %w", ErrSwitchRun, name, err)
}
