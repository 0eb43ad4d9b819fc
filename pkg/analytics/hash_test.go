package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleHash_MatchesBrowserClient(t *testing.T) {
	cases := map[string]int64{
		"":                   0,
		"abc":                96354,
		"hello":              99162322,
		"Aa":                 2112,
		"BB":                 2112,
		"polygenelubricants": 2147483648, // wraps to math.MinInt32 before abs
		"😀":                  1772899,    // surrogate pair, hashed as two code units
	}
	for in, want := range cases {
		require.Equal(t, want, SimpleHash(in), "hash of %q", in)
	}
}

func TestPick_Deterministic(t *testing.T) {
	variants := []string{"apply_now", "learn_more"}

	// "ut" hashes to 3743.
	require.Equal(t, "learn_more", Pick("u", "t", variants))
	require.Equal(t, Pick("u", "t", variants), Pick("u", "t", variants))
	require.Empty(t, Pick("u", "t", nil))
}
