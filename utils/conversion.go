package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive numeric id from a path or query parameter.
func ParseID(name, val string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", name, val)
	}
	return uint(id), nil
}
