package cling

import (
	"math"
	"strconv"
	"strings"
)

// FlagType identifies the value type a [Definition] accepts. The zero value
// is TypeString.
type FlagType int

const (
	TypeString FlagType = iota
	TypeBool
	TypeInt
	TypeFloat
)

func (t FlagType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	}
	return "unknown"
}

// hint returns the value placeholder shown in help text. Boolean flags take
// no value and have no hint.
func (t FlagType) hint() string {
	switch t {
	case TypeBool:
		return ""
	case TypeInt:
		return "<int>"
	case TypeFloat:
		return "<float>"
	default:
		return "<string>"
	}
}

// Definition describes one recognized flag: its long name, optional short
// alias, value type, and parsing attributes. Definitions are plain data; they
// are never mutated during parsing.
type Definition struct {
	// Name is the long identifier, unique within the owning command. It is
	// matched against "--name" on the command line.
	Name string

	// Short is an optional alias, unique within the owning command. It is
	// matched against "-s" on the command line.
	Short string

	// Type determines value validation and the help type-hint.
	Type FlagType

	// Description is free text for help rendering.
	Description string

	// Required fails parsing when the flag has no supplied value and no
	// default. A non-empty Default always satisfies the required check.
	Required bool

	// Default is the raw value recorded when the flag never occurs in the
	// input. Empty means no default.
	Default string

	// Multiple allows the flag to be repeated and to absorb every following
	// non-flag token, accumulating values instead of overwriting.
	Multiple bool
}

// Validate reports whether raw is an acceptable value for the definition's
// type. It is pure: no side effects, no panics.
func (d *Definition) Validate(raw string) bool {
	switch d.Type {
	case TypeInt:
		// Reject "1.0" and friends even though they truncate to an int.
		if strings.Contains(raw, ".") {
			return false
		}
		_, err := strconv.ParseInt(raw, 10, 64)
		return err == nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		return err == nil && !math.IsNaN(f)
	case TypeBool:
		// A boolean flag may be present with no value at all.
		return raw == "" || raw == "true" || raw == "false"
	default:
		return true
	}
}
