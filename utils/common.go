// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// ReverseComplement takes a DNA sequence string and returns its reverse complement.
// Case is preserved (a -> t, G -> C). 'N' and 'n' map to themselves, and any
// other symbol passes through unchanged so the minus strand never contains
// characters that were not present on the plus strand.
func ReverseComplement(seq string) string {
	var rc strings.Builder
	rc.Grow(len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte('T')
		case 'a':
			rc.WriteByte('t')
		case 'T':
			rc.WriteByte('A')
		case 't':
			rc.WriteByte('a')
		case 'C':
			rc.WriteByte('G')
		case 'c':
			rc.WriteByte('g')
		case 'G':
			rc.WriteByte('C')
		case 'g':
			rc.WriteByte('c')
		default:
			rc.WriteByte(seq[i]) // 'N', 'n', and anything non-standard
		}
	}
	return rc.String()
}

// GCContent returns the G+C fraction of a sequence as a percentage.
// Case-insensitive. Returns 0 for an empty sequence.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g', 'C', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// OpenFileOrGzip opens a plain or gzip-compressed file. Compression is
// detected from the gzip magic bytes rather than the file extension, so
// renamed genome downloads still open correctly. The caller closes the
// returned ReadCloser.
func OpenFileOrGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 2)
	n, _ := f.Read(buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipReadCloser{gr: gr, f: f}, nil
	}
	return f, nil
}

type gzipReadCloser struct {
	gr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gr.Read(p) }

func (g *gzipReadCloser) Close() error {
	gzErr := g.gr.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

// WrapFasta wraps a sequence every `width` characters for FASTA output.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}
