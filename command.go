package cling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cling-go/cling/pkg/suggest"
)

// Command is a node in the command tree. Each node owns its flag definitions,
// its children, and the values collected for it during parsing. A tree is
// built once, declaratively, and resolved once per program invocation; there
// is no reset operation.
type Command struct {
	// Name is a single word identifying the command in the tree and in help
	// text.
	Name string

	// Description is a brief summary shown in the parent's help listing.
	Description string

	// Defs holds the command's flag definitions. Order determines the listing
	// order in help text.
	Defs []*Definition

	// SubCommands is the list of nested commands under this one. Insertion
	// order determines the listing order in help text; lookup is by exact
	// name match.
	SubCommands []*Command

	// Exec defines the command's execution logic. It receives the resolved
	// command, from which parsed flag values are read. This function is
	// called when [Run] is invoked on the tree.
	Exec func(ctx context.Context, cmd *Command) error

	values map[string][]string
}

// ResolveOptions carries the collaborator effects the parser needs: where
// help text goes and how the process terminates on the help path.
type ResolveOptions struct {
	// Stdout receives rendered help text. If nil, [os.Stdout] is used.
	Stdout io.Writer

	// Exit terminates the process after help is printed. If nil, [os.Exit]
	// is used. Tests may substitute a function that records the code and
	// returns; Resolve then returns the command whose help was printed,
	// without parsing further.
	Exit func(code int)
}

func checkAndSetResolveOptions(opts *ResolveOptions) *ResolveOptions {
	if opts == nil {
		opts = &ResolveOptions{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	return opts
}

// Resolve walks the command tree, consuming leading tokens that name
// subcommands, and parses the remaining tokens as flags against the selected
// node. It returns the selected node, ready for value access.
//
// This function is the main entry point and should be called with the root
// command and the arguments to parse, typically os.Args[1:]. The options
// parameter may be nil, in which case default values are used.
func Resolve(root *Command, args []string, opts *ResolveOptions) (*Command, error) {
	if root == nil {
		return nil, errors.New("failed to resolve: root command is nil")
	}
	if err := validateTree(root, nil); err != nil {
		return nil, fmt.Errorf("failed to resolve: %w", err)
	}
	opts = checkAndSetResolveOptions(opts)
	return root.resolve(args, opts)
}

// resolve descends into subcommands until the first token is no longer a
// child name, then hands the remaining tokens to parse. A token that names
// both a subcommand and a flag is always treated as a subcommand.
func (c *Command) resolve(args []string, opts *ResolveOptions) (*Command, error) {
	if len(args) > 0 {
		if isHelpToken(args[0]) {
			c.showHelp(opts)
			return c, nil
		}
		if sub := c.findSubCommand(args[0]); sub != nil {
			return sub.resolve(args[1:], opts)
		}
		if !isFlagLike(args[0]) && len(c.SubCommands) > 0 {
			return nil, c.unknownSubCommandError(args[0])
		}
	}
	if err := c.parse(args, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// findSubCommand returns the child with the given name, or nil.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownSubCommandError(token string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	if suggestions := suggest.FindSimilar(token, known, 3); len(suggestions) > 0 {
		return newError(CodeUnknownSubcommand, token,
			"unknown subcommand %q. Did you mean one of these?\n\t%s",
			token, strings.Join(suggestions, "\n\t"))
	}
	return newError(CodeUnknownSubcommand, token, "unknown subcommand %q", token)
}

func (c *Command) showHelp(opts *ResolveOptions) {
	fmt.Fprintln(opts.Stdout, c.usage())
	opts.Exit(0)
}

// validateTree rejects trees that cannot be resolved unambiguously: nameless
// commands, names with spaces, and duplicate flag names within one command.
func validateTree(c *Command, path []string) error {
	if c.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.Contains(c.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", c.Name)
	}
	seen := make(map[string]struct{}, len(c.Defs)*2)
	for _, def := range c.Defs {
		if def.Name == "" {
			return fmt.Errorf("command %q has a flag definition with no name", c.Name)
		}
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("command %q has duplicate flag name %q", c.Name, def.Name)
		}
		seen[def.Name] = struct{}{}
		if def.Short != "" {
			if _, ok := seen[def.Short]; ok {
				return fmt.Errorf("command %q has duplicate flag name %q", c.Name, def.Short)
			}
			seen[def.Short] = struct{}{}
		}
	}
	currentPath := append(path, c.Name)
	for _, sub := range c.SubCommands {
		if err := validateTree(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
