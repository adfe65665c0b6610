// Package fasta parses FASTA-formatted nucleotide files.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	common "gene_lab_go/utils"
)

// Record is one FASTA entry: the header text after '>' and the
// concatenated sequence lines.
type Record struct {
	Label string
	Seq   string
}

// FormatError reports malformed FASTA input, with the 1-based line
// number where parsing failed.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg)
}

// Parse reads FASTA records from r. A line starting with '>' opens a new
// record whose label is the rest of that line; subsequent non-blank lines
// are trimmed and concatenated until the next header or EOF. Blank lines
// are skipped. Sequence data before the first header is a FormatError.
//
// Each call consumes its own reader, so parsing is restartable by passing
// a fresh reader; no state is shared between calls.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []Record
	var label string
	var seq strings.Builder
	sawHeader := false
	lineNo := 0

	flush := func() {
		if sawHeader {
			records = append(records, Record{Label: label, Seq: seq.String()})
			seq.Reset()
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			label = strings.TrimPrefix(line, ">")
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, &FormatError{Line: lineNo, Msg: "sequence data before first '>' header"}
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	flush()
	return records, nil
}

// ParseFile opens a plain or gzip-compressed FASTA file and parses it.
func ParseFile(path string) ([]Record, error) {
	f, err := common.OpenFileOrGzip(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
