package cling

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("dispatches to the selected command", func(t *testing.T) {
		t.Parallel()
		opts, out, _ := testOptions()

		var ran int
		root := &Command{
			Name: "count",
			SubCommands: []*Command{
				{
					Name: "version",
					Exec: func(ctx context.Context, cmd *Command) error {
						fmt.Fprintln(out, "1.0.0")
						return nil
					},
				},
			},
			Exec: func(ctx context.Context, cmd *Command) error {
				ran++
				return nil
			},
		}

		err := Run(context.Background(), root, []string{"version"}, opts)
		require.NoError(t, err)
		require.Equal(t, "1.0.0\n", out.String())
		out.Reset()

		for i := 0; i < 3; i++ {
			require.NoError(t, Run(context.Background(), root, nil, opts))
		}
		require.Equal(t, 3, ran)
	})
	t.Run("exec reads parsed values", func(t *testing.T) {
		t.Parallel()
		opts, _, _ := testOptions()

		var got int
		root := &Command{
			Name: "serve",
			Defs: []*Definition{
				{Name: "port", Type: TypeInt, Required: true},
			},
			Exec: func(ctx context.Context, cmd *Command) error {
				got = cmd.GetInt("port")
				return nil
			},
		}

		err := Run(context.Background(), root, []string{"--port=8080"}, opts)
		require.NoError(t, err)
		require.Equal(t, 8080, got)
	})
	t.Run("exec errors propagate", func(t *testing.T) {
		t.Parallel()
		opts, _, _ := testOptions()

		boom := errors.New("boom")
		root := &Command{
			Name: "tool",
			Exec: func(ctx context.Context, cmd *Command) error { return boom },
		}

		err := Run(context.Background(), root, nil, opts)
		require.ErrorIs(t, err, boom)
	})
	t.Run("subcommand without exec", func(t *testing.T) {
		t.Parallel()
		opts, _, _ := testOptions()

		root := &Command{
			Name:        "tool",
			SubCommands: []*Command{{Name: "stub"}},
			Exec:        func(ctx context.Context, cmd *Command) error { return nil },
		}

		err := Run(context.Background(), root, []string{"stub"}, opts)
		require.Error(t, err)
		var noExec *NoExecError
		require.ErrorAs(t, err, &noExec)
		assert.Equal(t, "stub", noExec.Command.Name)
		assert.Contains(t, err.Error(), `command "stub" has no execution function`)
	})
	t.Run("root without exec prints help", func(t *testing.T) {
		t.Parallel()
		opts, out, rec := testOptions()

		root := &Command{
			Name:        "tool",
			SubCommands: []*Command{{Name: "stub"}},
		}

		err := Run(context.Background(), root, nil, opts)
		require.NoError(t, err)
		assert.True(t, rec.called)
		assert.Equal(t, 0, rec.code)
		assert.Contains(t, out.String(), "Usage: tool <subcommand>")
	})
	t.Run("parse errors stop execution", func(t *testing.T) {
		t.Parallel()
		opts, _, _ := testOptions()

		root := &Command{
			Name: "tool",
			Exec: func(ctx context.Context, cmd *Command) error {
				t.Fatal("exec must not run on parse failure")
				return nil
			},
		}

		err := Run(context.Background(), root, []string{"--nope"}, opts)
		require.Error(t, err)
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, CodeUnknownArgument, perr.Code)
	})
}
