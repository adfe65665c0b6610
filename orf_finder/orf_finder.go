package orf_finder

import (
	"sort"
	"strings"
)

// ORF is a candidate gene: a 0-based half-open span [Start,End) whose
// sequence begins with ATG, ends with an in-frame stop codon, and contains
// no other in-frame stop. Frame is 1, 2, or 3 (Start mod 3 plus one).
type ORF struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Frame  int    `json:"frame"`
	Length int    `json:"length"`
	Seq    string `json:"sequence,omitempty"`
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// FindORFs scans one strand of a nucleotide sequence across all three
// reading frames and returns the candidate ORFs sorted by start position,
// then frame.
//
// Within a frame, an ATG that falls inside an already-emitted ORF is
// suppressed: the first ATG wins and owns the interval until its stop
// codon closes it. The suppression is frame-local only, so the same region
// can be reported from different frames; the lecture this tool follows
// keeps that behavior on purpose, as a worked source of false positives.
// An ATG with no downstream in-frame stop yields nothing.
//
// The caller supplies the reverse complement itself to scan the minus
// strand; FindORFs is strand-agnostic.
func FindORFs(sequence string) []ORF {
	seq := strings.ToUpper(sequence)
	var orfs []ORF

	for f := 0; f < 3; f++ {
		var claimed []ORF // ascending, non-overlapping within the frame
		for i := f; i+3 <= len(seq); i += 3 {
			if seq[i:i+3] != "ATG" {
				continue
			}
			if insideClaimed(claimed, i) {
				continue
			}
			for j := i + 3; j+3 <= len(seq); j += 3 {
				if stopCodons[seq[j:j+3]] {
					orf := ORF{
						Start:  i,
						End:    j + 3,
						Frame:  f + 1,
						Length: j + 3 - i,
						Seq:    seq[i : j+3],
					}
					claimed = append(claimed, orf)
					orfs = append(orfs, orf)
					break
				}
			}
		}
	}

	sort.Slice(orfs, func(a, b int) bool {
		if orfs[a].Start != orfs[b].Start {
			return orfs[a].Start < orfs[b].Start
		}
		return orfs[a].Frame < orfs[b].Frame
	})
	return orfs
}

// insideClaimed reports whether position falls within any claimed interval.
// A flat linear check is plenty at genome scale: a frame rarely holds more
// than a few tens of thousands of ORFs and each is checked once.
func insideClaimed(claimed []ORF, pos int) bool {
	for _, c := range claimed {
		if pos >= c.Start && pos < c.End {
			return true
		}
	}
	return false
}

// FilterMinLength drops ORFs shorter than minLen nucleotides.
func FilterMinLength(orfs []ORF, minLen int) []ORF {
	if minLen <= 0 {
		return orfs
	}
	var out []ORF
	for _, o := range orfs {
		if o.Length >= minLen {
			out = append(out, o)
		}
	}
	return out
}
