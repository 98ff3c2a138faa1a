package trace

import (
	"strconv"
	"strings"
	"unicode"
)

// Fields is the typed key-value view of one event string. Values stay as raw
// text; the accessors apply defaults and coercion, keeping missing-field
// handling explicit and testable on its own.
type Fields map[string]string

// ScanFields extracts every Name=value token from an event string, wherever
// it appears. A value runs until the next whitespace or closing parenthesis;
// a trailing comma is stripped. The first occurrence of a name wins, and a
// name whose value is empty after stripping counts as absent.
func ScanFields(event string) Fields {
	f := make(Fields)
	for i := 0; i < len(event); i++ {
		if event[i] != '=' {
			continue
		}

		start := i
		for start > 0 && isNameChar(event[start-1]) {
			start--
		}
		if start == i {
			continue
		}
		name := event[start:i]

		end := i + 1
		for end < len(event) && !isValueEnd(event[end]) {
			end++
		}
		value := strings.TrimSuffix(event[i+1:end], ",")

		if value != "" {
			if _, seen := f[name]; !seen {
				f[name] = value
			}
		}
		i = end
	}
	return f
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isValueEnd(c byte) bool {
	return c == ' ' || c == '\t' || c == ')'
}

// Has reports whether the named field is present.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Str returns the named field, or def when it is absent.
func (f Fields) Str(name, def string) string {
	if v, ok := f[name]; ok {
		return v
	}
	return def
}

// Int returns the named field parsed as an integer, or def when the field is
// absent or not numeric.
func (f Fields) Int(name string, def int) int {
	v, ok := f[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Duration returns the named annotated duration value. A leading '+' sign and
// a trailing unit suffix are stripped before conversion; anything left that
// is not numeric coerces to 0 rather than failing.
func (f Fields) Duration(name string) float64 {
	v, ok := f[name]
	if !ok {
		return 0
	}
	v = strings.TrimPrefix(v, "+")
	v = strings.TrimRightFunc(v, unicode.IsLetter)
	d, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return d
}
