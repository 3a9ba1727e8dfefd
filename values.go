package cling

import "strconv"

// Get returns the first collected value for name, or the empty string if the
// flag was never supplied and has no default.
func (c *Command) Get(name string) string {
	if vals := c.values[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// GetAll returns every collected value for name, in the order they appeared.
// The result is empty when the flag is absent.
func (c *Command) GetAll(name string) []string {
	return c.values[name]
}

// GetInt returns the first collected value for name as an integer, or 0 when
// the value is missing or unparsable. It never fails; parsing already
// validated typed flags, so a zero here means "not supplied" for flags
// declared with [TypeInt].
func (c *Command) GetInt(name string) int {
	n, err := strconv.Atoi(c.Get(name))
	if err != nil {
		return 0
	}
	return n
}

// GetFloat returns the first collected value for name as a float64, or 0 when
// the value is missing or unparsable.
func (c *Command) GetFloat(name string) float64 {
	f, err := strconv.ParseFloat(c.Get(name), 64)
	if err != nil {
		return 0
	}
	return f
}

// GetBool reports whether the first collected value for name is "true". A
// boolean flag that was present with no value records "true".
func (c *Command) GetBool(name string) bool {
	return c.Get(name) == "true"
}
