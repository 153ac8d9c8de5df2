package objectstore

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bwst/model"
)

// open returns a ReadCloser over the named blob, transparently
// decompressing by file extension (.gz, .lz4) the way the benchmark
// corpus files described in §6 EXTERNAL INTERFACES may be shipped.
func open(store BlobStore, name string) (io.ReadCloser, error) {
	b, err := store.Open(name)
	if err != nil {
		return nil, err
	}
	raw := io.NewSectionReader(b, 0, b.Size())

	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(raw)
		if err != nil {
			b.Close()
			return nil, err
		}
		return &compressedBlob{Reader: gz, blob: b}, nil
	case strings.HasSuffix(name, ".lz4"):
		return &compressedBlob{Reader: io.NopCloser(lz4.NewReader(raw)), blob: b}, nil
	default:
		return &compressedBlob{Reader: io.NopCloser(raw), blob: b}, nil
	}
}

type compressedBlob struct {
	io.Reader
	blob Blob
}

func (c *compressedBlob) Close() error {
	if rc, ok := c.Reader.(io.Closer); ok {
		rc.Close()
	}
	return c.blob.Close()
}

// ReadVectors parses the binary corpus/query layout of §6: a little-
// endian uint32 count n, a little-endian uint32 dimension d, followed
// by n*d little-endian float32 values in row-major order.
func ReadVectors(store BlobStore, name string) ([][]float32, int, error) {
	r, err := open(store, name)
	if err != nil {
		return nil, 0, err
	}
	defer r.Close()

	br := bufio.NewReader(r)
	var n, d uint32
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, 0, fmt.Errorf("objectstore: reading %s: count header: %w", name, err)
	}
	if err := binary.Read(br, binary.LittleEndian, &d); err != nil {
		return nil, 0, fmt.Errorf("objectstore: reading %s: dim header: %w", name, err)
	}

	vectors := make([][]float32, n)
	row := make([]byte, int(d)*4)
	for i := range vectors {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, 0, fmt.Errorf("objectstore: reading %s: row %d: %w", name, i, err)
		}
		v := make([]float32, d)
		for j := range v {
			v[j] = math.Float32frombits(binary.LittleEndian.Uint32(row[j*4 : j*4+4]))
		}
		vectors[i] = v
	}
	return vectors, int(d), nil
}

// ReadAttributes parses attrs.csv: one float64 per line.
func ReadAttributes(store BlobStore, name string) ([]float64, error) {
	r, err := open(store, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []float64
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &model.ParseError{File: name, Line: lineNo, Err: err}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objectstore: reading %s: %w", name, err)
	}
	return out, nil
}

// ReadRanges parses ranges.csv: one "lo-hi" pair per line.
func ReadRanges(store BlobStore, name string) ([][2]float64, error) {
	r, err := open(store, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out [][2]float64
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		loStr, hiStr, ok := splitRange(line)
		if !ok {
			return nil, &model.ParseError{File: name, Line: lineNo, Err: fmt.Errorf("malformed range %q", line)}
		}
		lo, err := strconv.ParseFloat(loStr, 64)
		if err != nil {
			return nil, &model.ParseError{File: name, Line: lineNo, Err: err}
		}
		hi, err := strconv.ParseFloat(hiStr, 64)
		if err != nil {
			return nil, &model.ParseError{File: name, Line: lineNo, Err: err}
		}
		out = append(out, [2]float64{lo, hi})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objectstore: reading %s: %w", name, err)
	}
	return out, nil
}

// splitRange locates the "-" separator in a §6 "lo-hi" range line. lo's
// own sign (line[0]) and any exponent sign inside scientific notation
// (a "-" immediately after 'e'/'E') are not valid separators, so the
// scan starts at index 1 and skips those positions — this is what lets
// a negative lo (e.g. "-5--1") and an exponent-bearing bound (e.g.
// "1.5e-3-2.5") both parse correctly.
func splitRange(line string) (lo, hi string, ok bool) {
	for i := 1; i < len(line); i++ {
		if line[i] != '-' {
			continue
		}
		if prev := line[i-1]; prev == 'e' || prev == 'E' {
			continue
		}
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
	}
	return "", "", false
}

// ReadGroundTruth parses gt.ivecs: for each query, a little-endian int32
// count g followed by g little-endian int32 neighbor ids, repeated for
// every query in file order.
func ReadGroundTruth(store BlobStore, name string) ([][]int, error) {
	r, err := open(store, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	br := bufio.NewReader(r)
	var out [][]int
	for {
		var g int32
		if err := binary.Read(br, binary.LittleEndian, &g); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("objectstore: reading %s: record %d header: %w", name, len(out), err)
		}
		ids := make([]int, g)
		for i := range ids {
			var v int32
			if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
				return nil, fmt.Errorf("objectstore: reading %s: record %d: %w", name, len(out), err)
			}
			ids[i] = int(v)
		}
		out = append(out, ids)
	}
	return out, nil
}
