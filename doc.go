// Package cling implements a small command-line argument parser with nested
// subcommands, typed flags, and generated help text.
//
// A command tree is declared up front as a tree of [Command] values, each node
// carrying its own ordered list of flag [Definition]s. [Resolve] walks the
// tree to select a command, parses the remaining tokens against that command's
// definitions, and returns the selected node; flag values are then read back
// through the accessor methods on the resolved command.
//
// The package prioritizes simplicity and predictability: resolution and
// parsing are synchronous, single-pass, and never backtrack.
package cling
