package orf_overview

import (
	"flag"
	"fmt"
	"os"

	"gene_lab_go/fasta"
	"gene_lab_go/orf_finder"
)

// Run executes the orf_overview tool: predict ORFs and report their
// length, GC and codon-usage distributions.
func Run(args []string) {

	fs := flag.NewFlagSet("orf_overview", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Genome FASTA file (plain or .gz)")
	outFile := fs.String("out_file", "orf_report", "Prefix for report output files")
	strandFlag := fs.String("strand", "both", "Strand to scan: +, -, or both")
	minLen := fs.Int("minlen", 0, "Minimum ORF length in nucleotides")
	csvOut := fs.Bool("csv_out", false, "Output overview statistics as CSV")
	codonOut := fs.Bool("codon_out", false, "Output codon usage table as CSV")
	htmlOut := fs.Bool("html", false, "Output statistics and graphs to an HTML file")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	validStrands := map[string]bool{"+": true, "-": true, "both": true}
	if !validStrands[*strandFlag] {
		fmt.Fprintf(os.Stderr, "Invalid strand: %s (choose +, -, or both)\n", *strandFlag)
		os.Exit(1)
	}

	if !*csvOut && !*codonOut && !*htmlOut {
		fmt.Println("Error: No output format is selected")
		os.Exit(1)
	}

	records, err := fasta.ParseFile(*inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read FASTA:", err)
		os.Exit(1)
	}

	var rows []orf_finder.Row
	for _, rec := range records {
		rows = append(rows, orf_finder.ScanRecord(rec, *strandFlag, *minLen)...)
	}
	if len(rows) == 0 {
		fmt.Println("No ORFs found; nothing to report.")
		return
	}

	stats := Collect(rows)

	if *csvOut {
		if err := WriteCSVReport(*outFile, stats); err != nil {
			fmt.Println("Failed to write CSV:", err)
		} else {
			fmt.Printf("Wrote overview statistics to CSV file: %s.csv\n", *outFile)
		}
	}

	if *codonOut {
		if err := WriteCodonCSV(*outFile, stats.CodonUsage); err != nil {
			fmt.Println("Failed to write codon CSV:", err)
		} else {
			fmt.Printf("Wrote codon usage to CSV file: %s_codons.csv\n", *outFile)
		}
	}

	if *htmlOut {
		svgLength, err := GenerateLengthPlotSVG(Lengths(rows))
		if err != nil {
			fmt.Println("Failed to generate ORF length plot:", err)
			svgLength = "<p>Graph unavailable</p>"
		}
		svgGC, err := GenerateGCPlotSVG(GCValues(rows))
		if err != nil {
			fmt.Println("Failed to generate GC content plot:", err)
			svgGC = "<p>Graph unavailable</p>"
		}
		if err := WriteHTMLReport(*outFile, stats, svgLength, svgGC); err != nil {
			fmt.Println("Failed to write HTML report:", err)
		} else {
			fmt.Printf("Wrote HTML report: %s.html\n", *outFile)
		}
	}
}
