package gene_eval

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gene_lab_go/fasta"
	"gene_lab_go/gff"
	"gene_lab_go/orf_finder"
)

// Run executes the gene_eval tool: predict ORFs on a genome, load the
// reference annotation, and report precision/recall/F1.
func Run(args []string) {

	fs := flag.NewFlagSet("gene_eval", flag.ExitOnError)

	fastaFile := fs.String("fasta", "", "Genome FASTA file (plain or .gz)")
	gffFile := fs.String("gff", "", "Reference annotation (9-column GFF)")
	featureType := fs.String("feature_type", "CDS", "Annotation feature type to score against")
	strandFlag := fs.String("strand", "+", "Strand to predict and score: +, -, or both")
	tolerance := fs.Int("tolerance", 0, "Max endpoint distance (nt) for a prediction to match")
	minLen := fs.Int("minlen", 0, "Minimum predicted ORF length in nucleotides")
	classesFlag := fs.Bool("classes", false, "Also print the per-ORF match classification table")
	outFile := fs.String("out", "", "Write report to file (optional)")
	fs.Parse(args)

	if *fastaFile == "" || *gffFile == "" {
		log.Fatal("Error: -fasta and -gff are required")
	}
	validStrands := map[string]bool{"+": true, "-": true, "both": true}
	if !validStrands[*strandFlag] {
		log.Fatalf("Invalid strand: %s (choose +, -, or both)", *strandFlag)
	}
	if *tolerance < 0 {
		log.Fatalf("Invalid tolerance: %d (must be >= 0)", *tolerance)
	}

	var output io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		output = f
	}

	records, err := fasta.ParseFile(*fastaFile)
	if err != nil {
		log.Fatalf("Failed to read FASTA: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("FASTA file contains no records")
	}
	// single-chromosome assumption: score the first record only
	genome := records[0]
	if len(records) > 1 {
		fmt.Fprintf(os.Stderr, "Note: %d records in %s, scoring the first (%s)\n",
			len(records), *fastaFile, genome.Label)
	}

	annotations, err := gff.ParseFile(*gffFile)
	if err != nil {
		log.Fatalf("Failed to read annotation: %v", err)
	}

	rows := orf_finder.ScanRecord(genome, *strandFlag, *minLen)
	predicted := make([]Interval, len(rows))
	for i, r := range rows {
		predicted[i] = Interval{Start: r.Start, End: r.End}
	}

	truthStrand := *strandFlag
	if truthStrand == "both" {
		truthStrand = ""
	}
	var truth []Interval
	for _, rec := range gff.Filter(annotations, *featureType, truthStrand) {
		start, end := rec.Interval()
		truth = append(truth, Interval{Start: start, End: end})
	}

	m := Evaluate(predicted, truth, *tolerance)

	fmt.Fprintf(output, "=== Gene Prediction Report ===\n")
	fmt.Fprintf(output, "Genome: %s (%d bp)\n", genome.Label, len(genome.Seq))
	fmt.Fprintf(output, "Predicted ORFs: %d\n", len(predicted))
	fmt.Fprintf(output, "Reference %s features: %d\n", *featureType, len(truth))
	fmt.Fprintf(output, "Tolerance: %d nt\n\n", *tolerance)
	fmt.Fprintln(output, m.String())

	if *classesFlag {
		classes := Classify(predicted, truth, *tolerance)
		counts := map[MatchClass]int{}
		fmt.Fprintf(output, "\nstart\tend\tstrand\tframe\tclass\n")
		for i, r := range rows {
			counts[classes[i]]++
			fmt.Fprintf(output, "%d\t%d\t%s\t%+d\t%s\n", r.Start, r.End, r.Strand, r.Frame, classes[i])
		}
		fmt.Fprintf(output, "\nClass totals: full=%d start-only=%d end-only=%d false-positive=%d\n",
			counts[ClassFull], counts[ClassStartOnly], counts[ClassEndOnly], counts[ClassFalsePositive])
	}
}
