package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "x", Done.String())
	assert.Equal(t, " ", Incomplete.String())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("x")
	require.NoError(t, err)
	assert.Equal(t, Done, s)

	s, err = ParseStatus(" ")
	require.NoError(t, err)
	assert.Equal(t, Incomplete, s)
}

// TestStatusRoundTrip re-parses each status's own encoding.
func TestStatusRoundTrip(t *testing.T) {
	for _, status := range []Status{Incomplete, Done} {
		parsed, err := ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestParseStatusRejectsOtherCharacters(t *testing.T) {
	for _, input := range []string{"X", "o", "-", "", "xx", "✓"} {
		_, err := ParseStatus(input)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", input)
	}
}
