package orf_overview

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"gene_lab_go/orf_finder"
	common "gene_lab_go/utils"
)

// OverviewStats summarizes a set of predicted ORFs for the report.
type OverviewStats struct {
	TotalORFs    int
	TotalLength  int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	LengthStdDev float64
	MeanGC       float64
	GCStdDev     float64
	FrameCounts  map[int]int
	CodonUsage   []CodonCount
}

// CodonCount is one in-frame codon with its occurrence count and relative
// frequency across all predicted ORFs.
type CodonCount struct {
	Codon    string
	Count    int
	Fraction float64
}

// Collect computes summary statistics over predicted ORFs: length and GC
// distributions plus in-frame codon usage.
func Collect(rows []orf_finder.Row) OverviewStats {
	s := OverviewStats{FrameCounts: make(map[int]int)}
	if len(rows) == 0 {
		return s
	}

	lengths := make([]float64, len(rows))
	gcValues := make([]float64, len(rows))
	codonCounts := make(map[string]int)
	totalCodons := 0
	s.MinLength = rows[0].Length
	for i, r := range rows {
		lengths[i] = float64(r.Length)
		gcValues[i] = common.GCContent(r.Seq)
		s.TotalORFs++
		s.TotalLength += r.Length
		s.FrameCounts[r.Frame]++
		if r.Length < s.MinLength {
			s.MinLength = r.Length
		}
		if r.Length > s.MaxLength {
			s.MaxLength = r.Length
		}
		for k := 0; k+3 <= len(r.Seq); k += 3 {
			codonCounts[r.Seq[k:k+3]]++
			totalCodons++
		}
	}

	s.MeanLength = stat.Mean(lengths, nil)
	s.LengthStdDev = stat.StdDev(lengths, nil)
	s.MeanGC = stat.Mean(gcValues, nil)
	s.GCStdDev = stat.StdDev(gcValues, nil)

	for codon, count := range codonCounts {
		s.CodonUsage = append(s.CodonUsage, CodonCount{
			Codon:    codon,
			Count:    count,
			Fraction: float64(count) / float64(totalCodons),
		})
	}
	sort.Slice(s.CodonUsage, func(i, j int) bool {
		if s.CodonUsage[i].Count != s.CodonUsage[j].Count {
			return s.CodonUsage[i].Count > s.CodonUsage[j].Count
		}
		return s.CodonUsage[i].Codon < s.CodonUsage[j].Codon
	})
	return s
}

// Lengths extracts the ORF lengths as float64 for plotting.
func Lengths(rows []orf_finder.Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(r.Length)
	}
	return out
}

// GCValues extracts per-ORF GC percentages for plotting.
func GCValues(rows []orf_finder.Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = common.GCContent(r.Seq)
	}
	return out
}
