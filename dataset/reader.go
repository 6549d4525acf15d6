package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// maxLineSize bounds a single input line (wide attribute tables).
const maxLineSize = 16 << 20

// maxPrealloc caps the row slice capacity taken from the header; larger
// inputs grow by append.
const maxPrealloc = 1 << 16

// Header carries the run parameters stored on the first input line.
type Header struct {
	NumInstances  int
	NumAttributes int
	K             int
	Function      int
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Open reads a dataset from r, transparently decompressing zstd, gzip and
// lz4 frame input.
func Open(r io.Reader) (*Dataset, Header, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, Header{}, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		return Parse(dec)
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, Header{}, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return Parse(zr)
	case bytes.HasPrefix(magic, lz4Magic):
		return Parse(lz4.NewReader(br))
	default:
		return Parse(br)
	}
}

// Parse reads the plain text dataset format from r.
func Parse(r io.Reader) (*Dataset, Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text != "" {
				return text, true
			}
		}
		return "", false
	}

	text, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, Header{}, err
		}
		return nil, Header{}, &ParseError{Line: line + 1, Err: ErrMalformedHeader}
	}

	hdr, err := parseHeader(text)
	if err != nil {
		return nil, Header{}, &ParseError{Line: line, Err: err}
	}

	width := hdr.NumAttributes + 1
	rows := make([][]uint8, 0, min(hdr.NumInstances, maxPrealloc))
	for len(rows) < hdr.NumInstances {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, Header{}, err
			}
			return nil, Header{}, &ParseError{
				Line: line + 1,
				Err:  fmt.Errorf("%w: expected %d rows, got %d", ErrTruncated, hdr.NumInstances, len(rows)),
			}
		}

		row, err := parseRow(text, width)
		if err != nil {
			return nil, Header{}, &ParseError{Line: line, Err: err}
		}
		rows = append(rows, row)
	}

	if _, ok := next(); ok {
		return nil, Header{}, &ParseError{Line: line, Err: ErrTrailingData}
	}
	if err := sc.Err(); err != nil {
		return nil, Header{}, err
	}

	ds, err := New(hdr.NumAttributes, rows)
	if err != nil {
		return nil, Header{}, err
	}
	return ds, hdr, nil
}

func parseHeader(text string) (Header, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 4 {
		return Header{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedHeader, len(fields))
	}

	var vals [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Header{}, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
		}
		vals[i] = v
	}

	hdr := Header{NumInstances: vals[0], NumAttributes: vals[1], K: vals[2], Function: vals[3]}
	if hdr.NumInstances < 0 || hdr.NumAttributes < 0 || hdr.K < 0 {
		return Header{}, fmt.Errorf("%w: negative count in %q", ErrMalformedHeader, text)
	}
	if int64(hdr.NumInstances) > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %d instances exceed the row id range", ErrMalformedHeader, hdr.NumInstances)
	}
	if hdr.NumAttributes > MaxAttributes {
		return Header{}, fmt.Errorf("%w: %d attributes exceed %d", ErrMalformedHeader, hdr.NumAttributes, MaxAttributes)
	}
	return hdr, nil
}

func parseRow(text string, width int) ([]uint8, error) {
	fields := strings.Split(text, ",")
	if len(fields) != width {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, width, len(fields))
	}

	row := make([]uint8, width)
	for j, f := range fields {
		switch strings.TrimSpace(f) {
		case "0":
		case "1":
			row[j] = 1
		default:
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", j, err)
			}
			return nil, fmt.Errorf("column %d: value %d is not binary", j, v)
		}
	}
	return row, nil
}

// Write encodes ds with the given run parameters in the format read by Parse.
func Write(w io.Writer, ds *Dataset, k, function int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", ds.NumInstances(), ds.NumAttributes(), k, function); err != nil {
		return err
	}

	for _, row := range ds.rows {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('0' + v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
