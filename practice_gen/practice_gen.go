// Package practice_gen generates random practice genomes with planted
// genes, plus the matching truth annotation, so the predictor can be
// scored on input with a known answer.
package practice_gen

import (
	"fmt"
	"math/rand"
	"sort"

	"gene_lab_go/gff"
)

var stopCodons = []string{"TAA", "TAG", "TGA"}

// randSeq returns a random DNA sequence of the given length and GC bias
// (0.0-1.0). A bias of 0.5 gives uniform base frequencies.
func randSeq(rng *rand.Rand, seqLength int, gcBias float64) []byte {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := (1 - gcBias) / 2

	seq := make([]byte, seqLength)
	for i := 0; i < seqLength; i++ {
		r := rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return seq
}

// randGene builds one gene body: ATG, a run of random non-stop codons,
// and a random stop codon. The total length is a multiple of 3 between
// minLen and maxLen.
func randGene(rng *rand.Rand, minLen, maxLen int) string {
	bodyCodons := (minLen+rng.Intn(maxLen-minLen+1))/3 - 2
	if bodyCodons < 0 {
		bodyCodons = 0
	}
	gene := make([]byte, 0, (bodyCodons+2)*3)
	gene = append(gene, "ATG"...)
	for c := 0; c < bodyCodons; c++ {
		for {
			codon := randSeq(rng, 3, 0.5)
			if s := string(codon); s != "TAA" && s != "TAG" && s != "TGA" {
				gene = append(gene, codon...)
				break
			}
		}
	}
	gene = append(gene, stopCodons[rng.Intn(len(stopCodons))]...)
	return string(gene)
}

// PlantGenes overwrites the genome with nGenes non-overlapping gene bodies
// at random positions and returns the truth annotation (1-based inclusive,
// plus strand, feature type CDS so gene_eval scores it by default).
// Placement gives up after a bounded number of attempts on crowded genomes,
// so fewer than nGenes records can come back.
func PlantGenes(rng *rand.Rand, genome []byte, seqID string, nGenes, minLen, maxLen int) []gff.Record {
	var planted []gff.Record
	var claimed [][2]int

	attempts := nGenes * 50
	for len(planted) < nGenes && attempts > 0 {
		attempts--
		gene := randGene(rng, minLen, maxLen)
		if len(gene) > len(genome) {
			continue
		}
		start := rng.Intn(len(genome) - len(gene) + 1)
		end := start + len(gene)
		if overlapsAny(claimed, start, end) {
			continue
		}
		copy(genome[start:end], gene)
		claimed = append(claimed, [2]int{start, end})
		planted = append(planted, gff.Record{
			SeqID:       seqID,
			Source:      "practice_gen",
			FeatureType: "CDS",
			Start:       start + 1,
			End:         end,
			Strand:      "+",
			Attributes: map[string]string{
				"ID":     fmt.Sprintf("planted%d", len(planted)+1),
				"Length": fmt.Sprintf("%d", len(gene)),
			},
		})
	}

	sort.Slice(planted, func(i, j int) bool { return planted[i].Start < planted[j].Start })
	return planted
}

func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && c[0] < end {
			return true
		}
	}
	return false
}
