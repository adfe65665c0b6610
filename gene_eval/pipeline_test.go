package gene_eval

import (
	"strings"
	"testing"

	"gene_lab_go/fasta"
	"gene_lab_go/gff"
	"gene_lab_go/orf_finder"
)

// Two genes on a C-only background, so the scanner finds exactly the
// planted intervals: [3,12) in frame 1 and [16,28) in frame 2.
const genomeFasta = ">toy chromosome\n" +
	"CCCATGAAATAACCCC\n" +
	"ATGCCCGGGTAGCC\n"

const truthGFF = "##gff-version 3\n" +
	"toy\ttest\tCDS\t4\t12\t.\t+\t0\tID=g1\n" +
	"toy\ttest\tCDS\t17\t28\t.\t+\t0\tID=g2\n" +
	"toy\ttest\tgene\t4\t12\t.\t+\t.\tID=gene1\n"

func TestPredictionPipeline(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(genomeFasta))
	if err != nil {
		t.Fatalf("fasta: %v", err)
	}
	genome := records[0]

	rows := orf_finder.ScanRecord(genome, "+", 0)
	predicted := make([]Interval, len(rows))
	for i, r := range rows {
		predicted[i] = Interval{Start: r.Start, End: r.End}
	}
	if len(predicted) != 2 {
		t.Fatalf("predicted = %+v, want 2 ORFs", rows)
	}

	annotations, err := gff.Parse(strings.NewReader(truthGFF))
	if err != nil {
		t.Fatalf("gff: %v", err)
	}
	var truth []Interval
	for _, rec := range gff.Filter(annotations, "CDS", "+") {
		start, end := rec.Interval()
		truth = append(truth, Interval{Start: start, End: end})
	}
	if len(truth) != 2 {
		t.Fatalf("truth = %+v, want 2 CDS intervals", truth)
	}

	m := Evaluate(predicted, truth, 0)
	if m.TP != 2 || m.FP != 0 || m.FN != 0 {
		t.Fatalf("counts = %d/%d/%d, predicted=%v truth=%v", m.TP, m.FP, m.FN, predicted, truth)
	}
	if m.Precision != 1 || m.Recall != 1 || m.F1 != 1 {
		t.Errorf("metrics = %+v", m)
	}

	classes := Classify(predicted, truth, 0)
	for i, c := range classes {
		if c != ClassFull {
			t.Errorf("class %d = %s, want full", i, c)
		}
	}
}
