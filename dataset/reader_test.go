package dataset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `4,2,2,1
1,1,1
1,0,0
0,1,0
0,0,0
`

func TestParse(t *testing.T) {
	ds, hdr, err := Parse(strings.NewReader(exampleInput))
	require.NoError(t, err)

	assert.Equal(t, Header{NumInstances: 4, NumAttributes: 2, K: 2, Function: 1}, hdr)
	assert.Equal(t, 4, ds.NumInstances())
	assert.Equal(t, 2, ds.NumAttributes())
	assert.Equal(t, []uint8{0, 1, 0}, ds.Row(2))
}

func TestParseTolerance(t *testing.T) {
	in := " 2, 1, 1, 3 \r\n\n1 ,1\n 0,0\n\n\n"
	ds, hdr, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, hdr.Function)
	assert.Equal(t, 2, ds.NumInstances())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"Empty", "", ErrMalformedHeader, 1},
		{"HeaderFields", "1,2,3\n", ErrMalformedHeader, 1},
		{"HeaderNumber", "a,2,3,1\n", ErrMalformedHeader, 1},
		{"HeaderNegative", "-1,2,3,1\n", ErrMalformedHeader, 1},
		{"HeaderHugeInstances", "999999999999999999,1,1,1\n1,1\n", ErrMalformedHeader, 1},
		{"HeaderHugeAttributes", "0,999999999999,1,1\n", ErrMalformedHeader, 1},
		{"FieldCount", "2,2,1,1\n1,1,1\n1,1\n", ErrFieldCount, 3},
		{"Truncated", "3,1,1,1\n1,1\n0,0\n", ErrTruncated, 4},
		{"Trailing", "1,1,1,1\n1,1\n0,0\n", ErrTrailingData, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}

	t.Run("NonBinary", func(t *testing.T) {
		_, _, err := Parse(strings.NewReader("1,1,1,1\n1,5\n"))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Line)
		assert.Contains(t, err.Error(), "not binary")
	})
}

func TestParseLargeHeaderCount(t *testing.T) {
	// A plausible but wrong instance count must not allocate up front.
	var (
		err error
		pe  *ParseError
	)
	require.NotPanics(t, func() {
		_, _, err = Parse(strings.NewReader("100000000,1,1,1\n1,1\n0,0\n"))
	})
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 4, pe.Line)

	require.NotPanics(t, func() {
		_, _, err = Parse(strings.NewReader("999999999999999999,1,1,1\n1,1\n"))
	})
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestWriteRoundTrip(t *testing.T) {
	ds, _, err := Parse(strings.NewReader(exampleInput))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, 2, 1))
	assert.Equal(t, exampleInput, buf.String())
}

func TestOpenCompressed(t *testing.T) {
	compressors := map[string]func(w io.Writer) io.WriteCloser{
		"zstd": func(w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return enc
		},
		"gzip": func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"lz4":  func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
	}

	for name, newWriter := range compressors {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			zw := newWriter(&buf)
			_, err := io.WriteString(zw, exampleInput)
			require.NoError(t, err)
			require.NoError(t, zw.Close())

			ds, hdr, err := Open(&buf)
			require.NoError(t, err)
			assert.Equal(t, 2, hdr.K)
			assert.Equal(t, 4, ds.NumInstances())
			assert.Equal(t, []uint8{1, 1, 1}, ds.Row(0))
		})
	}

	t.Run("Plain", func(t *testing.T) {
		ds, _, err := Open(strings.NewReader(exampleInput))
		require.NoError(t, err)
		assert.Equal(t, 4, ds.NumInstances())
	})
}
