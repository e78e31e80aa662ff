package collatz

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testRange = 10_000

func TestGenerate17(t *testing.T) {
	require := require.New(t)

	seq, err := Generate(17)
	require.NoError(err)
	require.Equal(Sequence{17, 52, 26, 13, 40, 20, 10, 5, 16, 8, 4, 2, 1}, seq)
	require.Equal("17 52 26 13 40 20 10 5 16 8 4 2 1", seq.String())
	require.Equal(12, seq.Steps())
	require.Equal(int64(52), seq.Max())
}

func TestGenerateOne(t *testing.T) {
	require := require.New(t)

	seq, err := Generate(1)
	require.NoError(err)
	require.Equal(Sequence{1}, seq)
	require.Equal(0, seq.Steps())
}

func TestGenerateRange(t *testing.T) {
	require := require.New(t)

	for n := int64(1); n <= testRange; n++ {
		seq, err := Generate(n)
		require.NoError(err, "n=%d", n)
		require.NotEmpty(seq, "n=%d", n)
		require.Equal(n, seq[0], "first n=%d", n)
		require.Equal(int64(1), seq[len(seq)-1], "last n=%d", n)

		for i, v := range seq {
			require.Positive(v, "n=%d i=%d", n, i)
			if i < len(seq)-1 {
				require.NotEqual(int64(1), v, "early 1 n=%d i=%d", n, i)
			}
		}

		for i := 1; i < len(seq); i++ {
			a, b := seq[i-1], seq[i]
			if a%2 == 1 {
				require.Equal(3*a+1, b, "n=%d i=%d", n, i)
			} else {
				require.Equal(a/2, b, "n=%d i=%d", n, i)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	require := require.New(t)

	for _, n := range []int64{1, 7, 17, 27, 97, 871} {
		s1, err := Generate(n)
		require.NoError(err)
		s2, err := Generate(n)
		require.NoError(err)
		require.Equal(s1, s2, "n=%d", n)
	}
}

func TestGenerateConcurrent(t *testing.T) {
	require := require.New(t)

	want, err := Generate(27)
	require.NoError(err)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			got, err := Generate(27)
			if err != nil {
				return err
			}
			if !slices.Equal(want, got) {
				return fmt.Errorf("got %v, want %v", got, want)
			}
			return nil
		})
	}
	require.NoError(g.Wait())
}

func TestGenerateInvalid(t *testing.T) {
	require := require.New(t)

	for _, n := range []int64{0, -5, math.MinInt64} {
		seq, err := Generate(n)
		require.ErrorIs(err, ErrInvalidArgument, "n=%d", n)
		require.Nil(seq, "n=%d", n)
	}
}

func TestGenerateLimit(t *testing.T) {
	require := require.New(t)

	seq, err := Generate(17, WithMaxSteps(12))
	require.NoError(err)
	require.Len(seq, 13)

	seq, err = Generate(17, WithMaxSteps(11))
	require.ErrorIs(err, ErrLimitExceeded)
	require.Nil(seq)

	// 27 takes 111 steps
	_, err = Generate(27, WithMaxSteps(110))
	require.ErrorIs(err, ErrLimitExceeded)
	seq, err = Generate(27, WithMaxSteps(0))
	require.NoError(err)
	require.Equal(111, seq.Steps())
	require.Equal(int64(9232), seq.Max())
}

func TestGenerateOverflow(t *testing.T) {
	require := require.New(t)

	seq, err := Generate(math.MaxInt64)
	require.ErrorIs(err, ErrLimitExceeded)
	require.Nil(seq)
}

func TestStep(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(22), Step(7))
	require.Equal(int64(4), Step(8))
	require.Equal(int64(4), Step(1))
}

func TestParse(t *testing.T) {
	require := require.New(t)

	n, err := Parse("17")
	require.NoError(err)
	require.Equal(int64(17), n)

	n, err = Parse(" 1\n")
	require.NoError(err)
	require.Equal(int64(1), n)

	for _, s := range []string{"0", "-5", "3.5", "", "abc", "99999999999999999999"} {
		_, err := Parse(s)
		require.ErrorIs(err, ErrInvalidArgument, "%q", s)
	}
}

func BenchmarkGenerate(b *testing.B) {
	require := require.New(b)

	for i := 0; i < b.N; i++ {
		_, err := Generate(837799)
		require.NoError(err)
	}
}
