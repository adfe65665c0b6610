package orf_overview

import (
	"math"
	"strings"
	"testing"

	"gene_lab_go/orf_finder"
)

func rowsFor(seqs ...string) []orf_finder.Row {
	rows := make([]orf_finder.Row, len(seqs))
	for i, s := range seqs {
		rows[i] = orf_finder.Row{
			SeqID: "test", Strand: "+",
			Start: 0, End: len(s),
			Frame: 1, Length: len(s), Seq: s,
		}
	}
	return rows
}

func TestCollectEmpty(t *testing.T) {
	s := Collect(nil)
	if s.TotalORFs != 0 || s.TotalLength != 0 || len(s.CodonUsage) != 0 {
		t.Fatalf("stats = %+v, want zero values", s)
	}
}

func TestCollectLengths(t *testing.T) {
	s := Collect(rowsFor("ATGAAATAA", "ATGCCCGGGTAA"))
	if s.TotalORFs != 2 || s.TotalLength != 21 {
		t.Fatalf("stats = %+v", s)
	}
	if s.MinLength != 9 || s.MaxLength != 12 {
		t.Errorf("min/max = %d/%d, want 9/12", s.MinLength, s.MaxLength)
	}
	if math.Abs(s.MeanLength-10.5) > 1e-9 {
		t.Errorf("mean length = %v, want 10.5", s.MeanLength)
	}
	if s.FrameCounts[1] != 2 {
		t.Errorf("frame counts = %v", s.FrameCounts)
	}
}

func TestCollectGC(t *testing.T) {
	// GGGCCC is 100% GC, AAATTT is 0%
	s := Collect(rowsFor("GGGCCC", "AAATTT"))
	if math.Abs(s.MeanGC-50) > 1e-9 {
		t.Errorf("mean GC = %v, want 50", s.MeanGC)
	}
}

func TestCollectCodonUsage(t *testing.T) {
	s := Collect(rowsFor("ATGATGTAA"))
	if len(s.CodonUsage) != 2 {
		t.Fatalf("codon usage = %+v", s.CodonUsage)
	}
	top := s.CodonUsage[0]
	if top.Codon != "ATG" || top.Count != 2 {
		t.Errorf("top codon = %+v, want ATG x2", top)
	}
	if math.Abs(top.Fraction-2.0/3.0) > 1e-9 {
		t.Errorf("fraction = %v, want 2/3", top.Fraction)
	}
}

func TestLengthPlotSVG(t *testing.T) {
	lengths := []float64{9, 12, 12, 30, 60, 9, 9, 21}
	svg, err := GenerateLengthPlotSVG(lengths)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Errorf("output does not look like SVG: %.80q", svg)
	}
}

func TestGCPlotSVG(t *testing.T) {
	gc := []float64{30, 45, 50, 52, 48, 61, 55, 40}
	svg, err := GenerateGCPlotSVG(gc)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Errorf("output does not look like SVG: %.80q", svg)
	}
}
