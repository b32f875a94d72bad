package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{20, "20"},
		{12.5, "12.5"},
		{-1234, "-1,234"},
		{1234567.25, "1,234,567.25"},
		{1.0 / 3, "0.3333333333"},
		{2.0 / 3, "0.6666666667"},
		{math.Inf(1), "∞"},
		{math.Inf(-1), "-∞"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Format(tc.in), "Format(%v)", tc.in)
	}

	sum := 0.1
	sum += 0.2
	require.Equal(t, "0.3", Format(sum))
}

func TestParseDisplay(t *testing.T) {
	t.Parallel()
	cases := map[string]float64{
		"0":            0,
		"12.5":         12.5,
		"-1,234":       -1234,
		"1,234,567.25": 1234567.25,
		"5.":           5,
		"007":          7,
		"∞":            math.Inf(1),
	}
	for in, want := range cases {
		got, err := ParseDisplay(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "-", ".", "Not applicable", "1.2.3"} {
		_, err := ParseDisplay(bad)
		require.ErrorIs(t, err, ErrMalformedNumber, bad)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{3, -42.75, 98765.4321, 1e9} {
		got, err := ParseDisplay(Format(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
