package paystub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAmount_GroupedDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5 0 0 0 00", "5000.00"},
		{"-7 5 0 00", "-750.00"},
		{"5 000 00", "5000.00"},
		{"1 040 968 50", "1040968.50"},
		{"80 00", "80.00"},
		{"2500 00", "2500.00"},
		{"123 45*", "123.45"},
	}
	for _, tc := range cases {
		v, next, ok := scanAmount(strings.Fields(tc.in), 0)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, v, "input %q", tc.in)
		assert.Equal(t, len(strings.Fields(tc.in)), next, "input %q", tc.in)
	}
}

func TestScanAmount_StandaloneCents(t *testing.T) {
	v, next, ok := scanAmount([]string{"50"}, 0)
	require.True(t, ok)
	assert.Equal(t, ".50", v)
	assert.Equal(t, 1, next)

	// Followed by a non-group token the two digits still stand alone.
	v, _, ok = scanAmount([]string{"50", "Federal"}, 0)
	require.True(t, ok)
	assert.Equal(t, ".50", v)
}

func TestScanAmount_NotAnAmount(t *testing.T) {
	for _, in := range []string{"Regular", "3/15-9/14", "401K", "5"} {
		_, _, ok := scanAmount(strings.Fields(in), 0)
		assert.False(t, ok, "input %q", in)
	}
}

func TestScanAmounts_Consecutive(t *testing.T) {
	tokens := strings.Fields("5 0 0 0 00 5 0 0 0 00")
	amounts := scanAmounts(tokens, 0)
	require.Len(t, amounts, 2)
	assert.Equal(t, "5000.00", amounts[0])
	assert.Equal(t, "5000.00", amounts[1])
}

func TestSplitRow(t *testing.T) {
	label, amounts, ok := splitRow("Federal Income Tax -7 5 0 00 750 00")
	require.True(t, ok)
	assert.Equal(t, "Federal Income Tax", label)
	require.Len(t, amounts, 2)
	assert.Equal(t, "-750.00", amounts[0])
	assert.Equal(t, "750.00", amounts[1])

	// Non-numeric tokens after the label stay in the label.
	label, amounts, ok = splitRow("Espp 3/15-9/14 1 234 56")
	require.True(t, ok)
	assert.Equal(t, "Espp 3/15-9/14", label)
	require.Len(t, amounts, 1)
	assert.Equal(t, "1234.56", amounts[0])
}

func TestSplitRow_NoMatch(t *testing.T) {
	for _, in := range []string{"", "Totals", "1 234 56 only numbers", "   "} {
		_, _, ok := splitRow(in)
		assert.False(t, ok, "input %q", in)
	}
}
