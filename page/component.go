package page

import (
	"slices"

	"github.com/ardanlabs/collatz/collatz"
)

// Item is one list entry. Key is the position in the sequence.
type Item struct {
	Key   int
	Value int64
}

// Collatz is the sequence component. The sequence is computed once, when the
// component is created, and never changes afterwards.
type Collatz struct {
	number int64
	seq    collatz.Sequence
	err    error
}

// NewCollatz computes the sequence for n. Errors are kept on the component,
// see Err.
func NewCollatz(n int64, opts ...collatz.Option) *Collatz {
	seq, err := collatz.Generate(n, opts...)
	return &Collatz{
		number: n,
		seq:    seq,
		err:    err,
	}
}

// Number returns the starting value.
func (c *Collatz) Number() int64 {
	return c.number
}

// Err returns the error from computing the sequence, if any.
func (c *Collatz) Err() error {
	return c.err
}

// Sequence returns a copy of the computed sequence, nil on error.
func (c *Collatz) Sequence() collatz.Sequence {
	return slices.Clone(c.seq)
}

// Items returns the sequence as keyed list entries, in order.
func (c *Collatz) Items() []Item {
	items := make([]Item, len(c.seq))
	for i, v := range c.seq {
		items[i] = Item{Key: i, Value: v}
	}
	return items
}
