// Package macaddr decodes serialized MAC destination addresses into
// sequential node indices.
package macaddr

import (
	"fmt"
	"strconv"
)

// Decode converts a 1-4 digit serialized address into a node index.
// The network stack writes addresses as fixed-width decimal strings whose
// leading digit carries a weight of 255: a string starting with '0' is a low
// address with one padding zero stripped, anything else decodes as
// first_digit*255 + remaining digits.
func Decode(s string) (int, error) {
	if len(s) < 1 || len(s) > 4 {
		return 0, fmt.Errorf("address %q: length must be between 1 and 4", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("address %q: must contain only digits", s)
		}
	}

	if s[0] == '0' {
		if len(s) == 1 {
			return 0, nil
		}
		n, _ := strconv.Atoi(s[1:])
		return n, nil
	}

	if len(s) == 1 {
		return int(s[0] - '0'), nil
	}
	rest, _ := strconv.Atoi(s[1:])
	return int(s[0]-'0')*255 + rest, nil
}
