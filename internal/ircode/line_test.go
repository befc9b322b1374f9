package ircode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLine(t *testing.T) {
	t.Parallel()

	t.Run("reverses and packs the first four bytes", func(t *testing.T) {
		t.Parallel()
		word, suffix, err := DecodeLine("(1, 0, 0, 0) hello")
		require.NoError(t, err)
		assert.Equal(t, 0x80, word)
		assert.Equal(t, " hello", suffix)
	})

	t.Run("suffix captured verbatim without separator", func(t *testing.T) {
		t.Parallel()
		word, suffix, err := DecodeLine("(255,255,255,255)TAIL")
		require.NoError(t, err)
		assert.Equal(t, 0xffffffff, word)
		assert.Equal(t, "TAIL", suffix)
	})

	t.Run("whitespace around values is trimmed", func(t *testing.T) {
		t.Parallel()
		word, suffix, err := DecodeLine("(  1 ,0, 0 ,  0 )")
		require.NoError(t, err)
		assert.Equal(t, 0x80, word)
		assert.Equal(t, "", suffix)
	})

	t.Run("values beyond the fourth are ignored", func(t *testing.T) {
		t.Parallel()
		word, suffix, err := DecodeLine("(1, 0, 0, 0, 99, 250)x")
		require.NoError(t, err)
		assert.Equal(t, 0x80, word)
		assert.Equal(t, "x", suffix)
	})

	t.Run("amp power-toggle capture", func(t *testing.T) {
		t.Parallel()
		word, _, err := DecodeLine("(161, 196, 153, 102)")
		require.NoError(t, err)
		assert.Equal(t, 0x66992385, word)
	})

	t.Run("line without a group is a skip", func(t *testing.T) {
		t.Parallel()
		_, _, err := DecodeLine("no parens here")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("group capture is greedy to the last closing parenthesis", func(t *testing.T) {
		t.Parallel()
		// The group swallows "(x)" in the tail, so the last entry is
		// not an integer. This is an error, not a skip.
		_, _, err := DecodeLine("(1, 0, 0, 0) (x)")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMatch)
	})

	t.Run("fewer than four values fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := DecodeLine("(1, 2, 3) short")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMatch)
		assert.Contains(t, err.Error(), "need 4")
	})

	t.Run("non-integer value fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := DecodeLine("(1, nope, 3, 4)")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMatch)
	})

	t.Run("empty group fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := DecodeLine("()")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMatch)
	})

	t.Run("signed values reduce to their low byte", func(t *testing.T) {
		t.Parallel()
		word, _, err := DecodeLine("(-1, 0, 0, 0)")
		require.NoError(t, err)
		assert.Equal(t, 0xff, word)
	})
}

func TestDecodeStream(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"(1, 0, 0, 0) hello",
		"no parens here",
		"Heard 68 Pulses: [9000, 4500]",
		"(255,255,255,255)TAIL",
		"(161, 196, 153, 102)",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, Decode(strings.NewReader(input), &out))

	// Matching lines decode in input order; an empty suffix still gets
	// its separating space.
	want := "80  hello\nffffffff TAIL\n66992385 \n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("decoded stream mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeStreamMalformedGroupAborts(t *testing.T) {
	t.Parallel()

	input := "(1, 0, 0, 0) ok\n(1, 2) short\n(2, 0, 0, 0) never reached\n"
	var out bytes.Buffer
	err := Decode(strings.NewReader(input), &out)
	require.Error(t, err)
	assert.Equal(t, "80  ok\n", out.String())
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Decode(strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}
