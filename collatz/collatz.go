package collatz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSteps is the default limit on the number of steps Generate will take.
const MaxSteps = 100_000

var (
	// ErrInvalidArgument is returned for input that is not a positive integer.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLimitExceeded is returned when a sequence does not reach 1 within
	// the step limit or a value no longer fits in an int64.
	ErrLimitExceeded = errors.New("computation limit exceeded")
)

// Sequence is the ordered list of Collatz iterates from n down to 1.
type Sequence []int64

// String returns the values separated by a single space.
func (s Sequence) String() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// Steps returns the number of steps taken to reach 1.
func (s Sequence) Steps() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Max returns the largest value in the sequence.
func (s Sequence) Max() int64 {
	var m int64
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

type options struct {
	maxSteps int
}

// Option configures Generate.
type Option func(*options)

// WithMaxSteps sets the step limit, 0 means no limit.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

// Step returns the value following n in a Collatz sequence.
func Step(n int64) int64 {
	if n%2 == 0 {
		return n / 2
	}
	return n*3 + 1
}

// Generate returns the Collatz sequence starting at n, 1 included.
// A nil sequence is returned with every error.
func Generate(n int64, opts ...Option) (Sequence, error) {
	o := options{maxSteps: MaxSteps}
	for _, opt := range opts {
		opt(&o)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrInvalidArgument, n)
	}

	seq := Sequence{n}
	for x := n; x != 1; {
		if o.maxSteps > 0 && len(seq) > o.maxSteps {
			return nil, fmt.Errorf("%w: %d did not reach 1 in %d steps", ErrLimitExceeded, n, o.maxSteps)
		}
		if x%2 == 1 && x > (math.MaxInt64-1)/3 {
			return nil, fmt.Errorf("%w: %d overflows after %d steps", ErrLimitExceeded, n, seq.Steps())
		}
		x = Step(x)
		seq = append(seq, x)
	}

	return seq, nil
}
