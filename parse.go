package cling

import "strings"

// isFlagLike reports whether tok begins with a dash, distinguishing flags
// from subcommand names and value tokens during lookahead.
func isFlagLike(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

func isHelpToken(tok string) bool {
	return tok == "--help" || tok == "-h"
}

// splitValues splits a raw value on commas, trims whitespace, and drops empty
// segments. This is the sole mechanism for supplying multiple comma-joined
// values in one token.
func splitValues(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// parse consumes args against the command's definitions and records the
// collected values. The scan uses an explicit cursor rather than a plain
// range loop because one flag occurrence may absorb a variable number of
// following tokens, depending on its type and Multiple attribute.
func (c *Command) parse(args []string, opts *ResolveOptions) error {
	lookup := make(map[string]*Definition, len(c.Defs)*2)
	for _, def := range c.Defs {
		lookup[def.Name] = def
		if def.Short != "" {
			lookup[def.Short] = def
		}
	}
	c.values = make(map[string][]string)

	i := 0
	for i < len(args) {
		tok := args[i]
		if !isFlagLike(tok) {
			return newError(CodeUnexpectedArgument, tok, "unexpected argument %q", tok)
		}

		key := strings.TrimPrefix(tok, "-")
		key = strings.TrimPrefix(key, "-")
		var inline string
		var hasInline bool
		if idx := strings.Index(key, "="); idx >= 0 {
			key, inline, hasInline = key[:idx], key[idx+1:], true
		}

		if key == "help" || key == "h" {
			c.showHelp(opts)
			return nil
		}
		def, ok := lookup[key]
		if !ok {
			return newError(CodeUnknownArgument, tok, "unknown argument %q", tok)
		}

		var collected []string
		consumed := 1
		switch {
		case hasInline:
			collected = splitValues(inline)
		case def.Type == TypeBool:
			// Presence alone means true; booleans never look ahead.
			collected = []string{"true"}
		default:
			if i+1 >= len(args) || isFlagLike(args[i+1]) {
				return newError(CodeMissingValue, def.Name, "missing value for flag --%s", def.Name)
			}
			for j := i + 1; j < len(args) && !isFlagLike(args[j]); j++ {
				collected = append(collected, splitValues(args[j])...)
				consumed++
				if !def.Multiple {
					break
				}
			}
		}

		for _, v := range collected {
			if !def.Validate(v) {
				return newError(CodeInvalidValue, def.Name,
					"invalid value %q for flag --%s (%s)", v, def.Name, def.Type)
			}
		}
		c.values[def.Name] = append(c.values[def.Name], collected...)
		i += consumed
	}

	// Settle every definition that never occurred: default first, then the
	// required check. A default always satisfies a required flag.
	for _, def := range c.Defs {
		if _, ok := c.values[def.Name]; ok {
			continue
		}
		if def.Default != "" {
			c.values[def.Name] = []string{def.Default}
			continue
		}
		if def.Required {
			return newError(CodeMissingRequired, def.Name, "missing required argument --%s", def.Name)
		}
	}
	return nil
}
