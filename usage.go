package cling

import (
	"fmt"
	"strings"

	"github.com/cling-go/cling/pkg/textutil"
)

// wrapColumn is the rightmost column help text may occupy.
const wrapColumn = 80

// usage renders the command's help text. The output is deterministic: the
// usage line, the subcommand listing in insertion order, and the option rows
// left-aligned to the longest flag signature.
func (c *Command) usage() string {
	var b strings.Builder

	b.WriteString("Usage: " + c.Name)
	if len(c.SubCommands) > 0 {
		b.WriteString(" <subcommand>")
	}
	if len(c.Defs) > 0 {
		b.WriteString(" [options]")
	}
	b.WriteString("\n")

	if len(c.SubCommands) > 0 {
		b.WriteString("\nSubcommands:\n")
		for _, sub := range c.SubCommands {
			if sub.Description == "" {
				fmt.Fprintf(&b, "  %s\n", sub.Name)
				continue
			}
			fmt.Fprintf(&b, "  %s - %s\n", sub.Name, sub.Description)
		}
	}

	if rows := optionRows(c.Defs); len(rows) > 0 {
		b.WriteString("\nOptions:\n")
		maxLen := 0
		for _, row := range rows {
			if len(row.signature) > maxLen {
				maxLen = len(row.signature)
			}
		}
		for _, row := range rows {
			writeOptionRow(&b, row, maxLen)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

type optionRow struct {
	signature   string
	description string
}

// optionRows builds one row per definition, in declaration order, plus a
// synthesized help row when the command declares no explicit "help" flag.
// A command with no definitions gets no option section at all.
func optionRows(defs []*Definition) []optionRow {
	if len(defs) == 0 {
		return nil
	}
	rows := make([]optionRow, 0, len(defs)+1)
	hasHelp := false
	for _, def := range defs {
		if def.Name == "help" {
			hasHelp = true
		}
		rows = append(rows, optionRow{
			signature:   signature(def),
			description: describe(def),
		})
	}
	if !hasHelp {
		rows = append(rows, optionRow{signature: "-h, --help", description: "show this help"})
	}
	return rows
}

// signature formats the flag column: "-s, --long <hint>" or "--long <hint>".
func signature(def *Definition) string {
	var b strings.Builder
	if def.Short != "" {
		b.WriteString("-" + def.Short + ", ")
	}
	b.WriteString("--" + def.Name)
	if hint := def.Type.hint(); hint != "" {
		b.WriteString(" " + hint)
	}
	return b.String()
}

// describe formats the description column, appending the default, required,
// and multiple markers in that fixed order, each only when applicable.
func describe(def *Definition) string {
	desc := def.Description
	if def.Default != "" {
		desc += fmt.Sprintf(" (default: %s)", def.Default)
	}
	if def.Required {
		desc += " (required)"
	}
	if def.Multiple {
		desc += " (multiple allowed)"
	}
	return strings.TrimSpace(desc)
}

// writeOptionRow writes one aligned row, wrapping long descriptions with
// continuation lines indented under the description column.
func writeOptionRow(b *strings.Builder, row optionRow, maxLen int) {
	if row.description == "" {
		fmt.Fprintf(b, "  %s\n", row.signature)
		return
	}
	nameWidth := maxLen + 4
	padding := strings.Repeat(" ", maxLen-len(row.signature)+4)
	lines := textutil.Wrap(row.description, wrapColumn-nameWidth)
	fmt.Fprintf(b, "  %s%s%s\n", row.signature, padding, lines[0])

	indent := strings.Repeat(" ", nameWidth+2)
	for _, line := range lines[1:] {
		fmt.Fprintf(b, "%s%s\n", indent, line)
	}
}
