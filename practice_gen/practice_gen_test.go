package practice_gen

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRandSeqLengthAndAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seq := randSeq(rng, 500, 0.5)
	if len(seq) != 500 {
		t.Fatalf("length = %d, want 500", len(seq))
	}
	for i, b := range seq {
		switch b {
		case 'A', 'C', 'G', 'T':
		default:
			t.Fatalf("position %d: unexpected base %q", i, b)
		}
	}
}

func TestRandSeqGCBias(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seq := randSeq(rng, 10000, 0.8)
	gc := 0
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	frac := float64(gc) / float64(len(seq))
	if frac < 0.75 || frac > 0.85 {
		t.Errorf("GC fraction = %.3f, want about 0.8", frac)
	}
}

func TestRandGeneShape(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		gene := randGene(rng, 90, 300)
		if len(gene)%3 != 0 {
			t.Fatalf("gene length %d not a multiple of 3", len(gene))
		}
		if len(gene) < 9 {
			t.Fatalf("gene too short: %d", len(gene))
		}
		if !strings.HasPrefix(gene, "ATG") {
			t.Fatalf("gene does not start with ATG: %q", gene[:9])
		}
		stop := gene[len(gene)-3:]
		if stop != "TAA" && stop != "TAG" && stop != "TGA" {
			t.Fatalf("gene does not end with a stop codon: %q", stop)
		}
		for k := 3; k+3 <= len(gene)-3; k += 3 {
			c := gene[k : k+3]
			if c == "TAA" || c == "TAG" || c == "TGA" {
				t.Fatalf("internal in-frame stop at %d in %q", k, gene)
			}
		}
	}
}

func TestPlantGenes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	genome := randSeq(rng, 20000, 0.5)
	planted := PlantGenes(rng, genome, "test", 15, 90, 300)

	if len(planted) != 15 {
		t.Fatalf("planted %d genes, want 15", len(planted))
	}
	for i, rec := range planted {
		start, end := rec.Interval()
		gene := string(genome[start:end])
		if !strings.HasPrefix(gene, "ATG") {
			t.Errorf("gene %d: genome slice does not start with ATG", i)
		}
		stop := gene[len(gene)-3:]
		if stop != "TAA" && stop != "TAG" && stop != "TGA" {
			t.Errorf("gene %d: genome slice does not end with a stop codon", i)
		}
		if rec.FeatureType != "CDS" || rec.Strand != "+" {
			t.Errorf("gene %d: record = %+v", i, rec)
		}
		if i > 0 {
			prevStart, prevEnd := planted[i-1].Interval()
			if start < prevEnd && prevStart < end {
				t.Errorf("genes %d and %d overlap", i-1, i)
			}
			if rec.Start < planted[i-1].Start {
				t.Errorf("records not sorted by start")
			}
		}
	}
}
