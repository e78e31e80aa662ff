package collatz

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts text such as "17" to a starting value for Generate.
// Anything that is not a positive base 10 integer yields ErrInvalidArgument.
func Parse(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is not a positive integer", ErrInvalidArgument, n)
	}
	return n, nil
}
