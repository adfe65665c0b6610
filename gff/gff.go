// Package gff parses and writes GFF-style 9-column feature tables.
package gff

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	common "gene_lab_go/utils"
)

// Record is one annotation row. Start and End are kept 1-based inclusive
// exactly as read from the file; use Interval to compare against scanner
// output. Score and Phase are nil when the column holds ".".
type Record struct {
	SeqID       string
	Source      string
	FeatureType string
	Start       int
	End         int
	Score       *float64
	Strand      string
	Phase       *int
	Attributes  map[string]string
}

// Interval converts the record's coordinates to a 0-based half-open span.
func (r Record) Interval() (start, end int) {
	return r.Start - 1, r.End
}

// FormatError reports a row whose coordinate columns could not be parsed.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gff: line %d: %s", e.Line, e.Msg)
}

// Parse reads annotation rows from r. Blank lines and '#' comment lines are
// skipped, as is any row that does not split into exactly 9 tab-separated
// fields. Attribute tokens without '=' are dropped silently. A non-numeric
// start or end column is a FormatError.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 9 {
			continue
		}

		start, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("non-numeric start %q", fields[3])}
		}
		end, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("non-numeric end %q", fields[4])}
		}

		rec := Record{
			SeqID:       fields[0],
			Source:      fields[1],
			FeatureType: fields[2],
			Start:       start,
			End:         end,
			Strand:      fields[6],
			Attributes:  parseAttributes(fields[8]),
		}
		if fields[5] != "." {
			if score, err := strconv.ParseFloat(fields[5], 64); err == nil {
				rec.Score = &score
			}
		}
		if fields[7] != "." {
			if phase, err := strconv.Atoi(fields[7]); err == nil {
				rec.Phase = &phase
			}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gff: read: %w", err)
	}
	return records, nil
}

// parseAttributes splits the 9th column into key=value pairs. Tokens that
// do not contain '=' are dropped, not errors.
func parseAttributes(field string) map[string]string {
	attrs := make(map[string]string)
	for _, token := range strings.Split(field, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		eq := strings.Index(token, "=")
		if eq < 0 {
			continue
		}
		attrs[token[:eq]] = token[eq+1:]
	}
	return attrs
}

// ParseFile opens a plain or gzip-compressed feature table and parses it.
func ParseFile(path string) ([]Record, error) {
	f, err := common.OpenFileOrGzip(path)
	if err != nil {
		return nil, fmt.Errorf("gff: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Filter returns the records matching featureType (all records when the
// type is empty) and, when strand is "+" or "-", that strand only.
func Filter(records []Record, featureType, strand string) []Record {
	var out []Record
	for _, rec := range records {
		if featureType != "" && rec.FeatureType != featureType {
			continue
		}
		if (strand == "+" || strand == "-") && rec.Strand != strand {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Write streams records as GFF3: version header plus one line per record.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("##gff-version 3\n"); err != nil {
		return err
	}
	for _, rec := range records {
		score := "."
		if rec.Score != nil {
			score = strconv.FormatFloat(*rec.Score, 'g', -1, 64)
		}
		phase := "."
		if rec.Phase != nil {
			phase = strconv.Itoa(*rec.Phase)
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			rec.SeqID, rec.Source, rec.FeatureType, rec.Start, rec.End,
			score, rec.Strand, phase, formatAttributes(rec.Attributes)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "."
	}
	// ID first, remaining keys sorted for stable output
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "ID" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var sb strings.Builder
	if id, ok := attrs["ID"]; ok {
		sb.WriteString("ID=" + id)
	}
	for _, k := range keys {
		if sb.Len() > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(k + "=" + attrs[k])
	}
	return sb.String()
}
