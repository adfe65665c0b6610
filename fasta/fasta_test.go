package fasta

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMultiRecord(t *testing.T) {
	in := ">chr1 Escherichia coli\nATGAAA\nTAA\n\n>chr2\nacgt\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Label != "chr1 Escherichia coli" {
		t.Errorf("label = %q", recs[0].Label)
	}
	if recs[0].Seq != "ATGAAATAA" {
		t.Errorf("seq = %q, want ATGAAATAA", recs[0].Seq)
	}
	if recs[1].Seq != "acgt" {
		t.Errorf("seq = %q, case should be preserved by the parser", recs[1].Seq)
	}
}

func TestParseTrimsTrailingWhitespace(t *testing.T) {
	in := ">s\nACGT  \r\nTTTT\t\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if recs[0].Seq != "ACGTTTTT" {
		t.Errorf("seq = %q, want ACGTTTTT", recs[0].Seq)
	}
}

func TestParseNoHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("ACGT\n"))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FormatError", err)
	}
	if fe.Line != 1 {
		t.Errorf("line = %d, want 1", fe.Line)
	}
}

func TestParseBlankLinesBeforeHeader(t *testing.T) {
	recs, err := Parse(strings.NewReader("\n\n>s\nACGT\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACGT" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestParseEmptyInput(t *testing.T) {
	recs, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0", len(recs))
	}
}

func TestParseHeaderOnly(t *testing.T) {
	recs, err := Parse(strings.NewReader(">empty\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestParseRestartable(t *testing.T) {
	in := ">s\nACGT\n"
	for i := 0; i < 2; i++ {
		recs, err := Parse(strings.NewReader(in))
		if err != nil || len(recs) != 1 {
			t.Fatalf("pass %d: recs=%v err=%v", i, recs, err)
		}
	}
}
