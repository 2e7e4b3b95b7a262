package nativesurface

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/nativesurface/limits"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "hello", "olleh"},
		{"single", "a", "a"},
		{"palindrome", "abba", "abba"},
		{"with spaces", "ab cd", "dc ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Reverse([]byte(tt.input))
			require.NotNil(t, out)
			defer out.Release()

			got, err := out.String()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.input), out.Len())
		})
	}
}

func TestReverseAbsent(t *testing.T) {
	assert.Nil(t, Reverse(nil))
}

func TestReverseEmptyIsNotAbsent(t *testing.T) {
	out := Reverse([]byte{})
	require.NotNil(t, out)
	assert.Equal(t, 0, out.Len())

	term, err := out.Terminated()
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, term)
	require.NoError(t, out.Release())

	s := ReverseString("")
	require.NotNil(t, s)
	require.NoError(t, s.Release())
}

func TestReverseRoundTrip(t *testing.T) {
	inputs := []string{"", "x", "hello, world", "\x01\x02\x03\xff", "tab\tnewline\n"}
	for _, in := range inputs {
		once := Reverse([]byte(in))
		b, err := once.Bytes()
		require.NoError(t, err)

		twice := Reverse(b)
		got, err := twice.String()
		require.NoError(t, err)
		assert.Equal(t, in, got)

		require.NoError(t, once.Release())
		require.NoError(t, twice.Release())
	}
}

func TestReverseDoesNotMutateInput(t *testing.T) {
	input := []byte("abc")
	out := Reverse(input)
	defer out.Release()
	assert.Equal(t, []byte("abc"), input)

	input[0] = 'z'
	got, err := out.String()
	require.NoError(t, err)
	assert.Equal(t, "cba", got)
}

func TestOwnedTextTerminated(t *testing.T) {
	out := ReverseString("go")
	defer out.Release()

	term, err := out.Terminated()
	require.NoError(t, err)
	assert.Equal(t, []byte{'o', 'g', 0}, term)
}

func TestOwnedTextReleaseOnce(t *testing.T) {
	out := ReverseString("data")
	require.NoError(t, out.Release())
	assert.True(t, out.Released())

	err := out.Release()
	assert.True(t, errors.Is(err, ErrAlreadyReleased))
}

// TestDoubleReleaseWarningReportsSize verifies the warning describes the
// buffer as it was before the first release wiped it
func TestDoubleReleaseWarningReportsSize(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	out := ReverseString("data")
	require.NoError(t, out.Release())
	hook.Reset()

	require.ErrorIs(t, out.Release(), ErrAlreadyReleased)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 4, entry.Data["text_len"])
	assert.Equal(t, true, entry.Data["text_released"])
}

func TestOwnedTextReadAfterRelease(t *testing.T) {
	out := ReverseString("data")
	require.NoError(t, out.Release())

	_, err := out.Bytes()
	assert.ErrorIs(t, err, ErrAlreadyReleased)
	_, err = out.String()
	assert.ErrorIs(t, err, ErrAlreadyReleased)
	_, err = out.Terminated()
	assert.ErrorIs(t, err, ErrAlreadyReleased)
	assert.Equal(t, 0, out.Len())
}

func TestReleaseNilIsNoop(t *testing.T) {
	var out *OwnedText
	assert.NoError(t, out.Release())
	assert.False(t, out.Released())
}

func TestBytesReturnsCopy(t *testing.T) {
	out := ReverseString("abc")
	defer out.Release()

	b, err := out.Bytes()
	require.NoError(t, err)
	b[0] = 'z'

	again, err := out.String()
	require.NoError(t, err)
	assert.Equal(t, "cba", again)
}

func TestReverseChecked(t *testing.T) {
	out, err := ReverseChecked([]byte("ok"))
	require.NoError(t, err)
	require.NoError(t, out.Release())

	out, err = ReverseChecked(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = ReverseChecked(make([]byte, limits.MaxTextLength+1))
	assert.ErrorIs(t, err, ErrTextTooLong)
}
