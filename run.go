package cling

import (
	"context"
	"fmt"
)

// NoExecError is returned when the resolved command has no execution
// function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.Name)
}

// Run resolves the command tree against args and invokes the selected
// command's Exec function. A convenience wrapper around [Resolve] for
// applications that attach behavior directly to the tree.
//
// If the root itself is selected and has no Exec, its help is printed
// instead of returning an error, so a bare invocation of a multi-command
// tool shows usage.
func Run(ctx context.Context, root *Command, args []string, opts *ResolveOptions) error {
	opts = checkAndSetResolveOptions(opts)
	cmd, err := Resolve(root, args, opts)
	if err != nil {
		return err
	}
	if cmd.Exec == nil {
		if cmd == root {
			cmd.showHelp(opts)
			return nil
		}
		return &NoExecError{Command: cmd}
	}
	return cmd.Exec(ctx, cmd)
}
