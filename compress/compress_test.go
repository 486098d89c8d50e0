package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTripIsBitIdentical(t *testing.T) {
	codec := NewGzip()

	inputs := [][]byte{
		[]byte(strings.Repeat("aggregated view row; ", 500)),
		[]byte("short"),
		{},
		{0x00, 0xff, 0x10, 0x80, 0x7f},
	}
	for _, in := range inputs {
		blob, err := codec.Compress(in)
		require.NoError(t, err)

		out, err := codec.Decompress(blob)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(in, out), "round trip must be exact")
	}
}

func TestGzipShrinksRepetitivePayloads(t *testing.T) {
	codec := NewGzip()
	in := []byte(strings.Repeat("formatted report line\n", 1000))

	blob, err := codec.Compress(in)
	require.NoError(t, err)
	assert.Less(t, len(blob), len(in))
}

func TestGzipDecompressRejectsGarbage(t *testing.T) {
	codec := NewGzip()

	_, err := codec.Decompress([]byte("this is not a gzip stream"))
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestGzipDecompressRejectsTruncatedStream(t *testing.T) {
	codec := NewGzip()
	blob, err := codec.Compress([]byte(strings.Repeat("x", 4096)))
	require.NoError(t, err)

	_, err = codec.Decompress(blob[:len(blob)/2])
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestPassthroughIsExplicitNoop(t *testing.T) {
	codec := Passthrough{}
	in := []byte("payload")

	blob, err := codec.Compress(in)
	require.NoError(t, err)
	assert.Equal(t, in, blob, "passthrough must not pretend to reduce size")

	out, err := codec.Decompress(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, "none", codec.Name())
}

func TestGzipCustomLevel(t *testing.T) {
	codec := &Gzip{Level: 1}
	in := []byte(strings.Repeat("abc", 2000))

	blob, err := codec.Compress(in)
	require.NoError(t, err)

	out, err := codec.Decompress(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
