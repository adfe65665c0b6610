package orf_finder

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gene_lab_go/fasta"
	"gene_lab_go/gff"
	common "gene_lab_go/utils"
)

// Row is one reported ORF in genome (plus-strand) coordinates, 0-based
// half-open. Frame is signed: +1..+3 on the forward strand, -1..-3 on the
// reverse.
type Row struct {
	SeqID  string `json:"seq_id"`
	Strand string `json:"strand"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Frame  int    `json:"frame"`
	Length int    `json:"length"`
	Seq    string `json:"sequence,omitempty"`
}

// SummaryStats aggregates the run for the -summary printout.
type SummaryStats struct {
	Total         int
	Forward       int
	Reverse       int
	TotalLength   int
	LongestLength int
	LongestSeqID  string
	LongestStart  int
	LongestEnd    int
	FrameCounts   map[string]int
}

// ScanRecord runs FindORFs over the requested strands of one FASTA record
// and returns rows in genome coordinates. Minus-strand ORFs found on the
// reverse complement are mapped back onto the plus strand.
func ScanRecord(rec fasta.Record, strand string, minLen int) []Row {
	var rows []Row
	if strand == "+" || strand == "both" {
		for _, o := range FilterMinLength(FindORFs(rec.Seq), minLen) {
			rows = append(rows, Row{
				SeqID: rec.Label, Strand: "+",
				Start: o.Start, End: o.End,
				Frame: o.Frame, Length: o.Length, Seq: o.Seq,
			})
		}
	}
	if strand == "-" || strand == "both" {
		rc := common.ReverseComplement(rec.Seq)
		for _, o := range FilterMinLength(FindORFs(rc), minLen) {
			rows = append(rows, Row{
				SeqID: rec.Label, Strand: "-",
				Start: len(rc) - o.End, End: len(rc) - o.Start,
				Frame: -o.Frame, Length: o.Length, Seq: o.Seq,
			})
		}
	}
	return rows
}

// Summarize folds rows into the summary block printed by -summary.
func Summarize(rows []Row) SummaryStats {
	s := SummaryStats{FrameCounts: make(map[string]int)}
	for _, r := range rows {
		s.Total++
		s.TotalLength += r.Length
		if r.Strand == "+" {
			s.Forward++
		} else {
			s.Reverse++
		}
		s.FrameCounts[fmt.Sprintf("%+d", r.Frame)]++
		if r.Length > s.LongestLength {
			s.LongestLength = r.Length
			s.LongestSeqID = r.SeqID
			s.LongestStart = r.Start
			s.LongestEnd = r.End
		}
	}
	return s
}

func writeTSV(w io.Writer, rows []Row, showSeq bool) {
	for _, r := range rows {
		if showSeq {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n", r.SeqID, r.Strand, r.Start, r.End, r.Length, r.Frame, r.Seq)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", r.SeqID, r.Strand, r.Start, r.End, r.Length, r.Frame)
		}
	}
}

func writeGFF(w io.Writer, rows []Row) error {
	recs := make([]gff.Record, len(rows))
	for i, r := range rows {
		recs[i] = gff.Record{
			SeqID:       r.SeqID,
			Source:      "orf_finder",
			FeatureType: "ORF",
			Start:       r.Start + 1, // GFF is 1-based closed
			End:         r.End,
			Strand:      r.Strand,
			Attributes: map[string]string{
				"ID":     fmt.Sprintf("orf%d", i+1),
				"Length": fmt.Sprintf("%d", r.Length),
			},
		}
	}
	return gff.Write(w, recs)
}

func writeJSON(w io.Writer, rows []Row, showSeq bool) error {
	if !showSeq {
		for i := range rows {
			rows[i].Seq = ""
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Run executes the orf_finder tool.
func Run(args []string) {

	fs := flag.NewFlagSet("orf_finder", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input FASTA file (plain or .gz)")
	minLen := fs.Int("minlen", 0, "Minimum ORF length in nucleotides")
	showSeq := fs.Bool("showseq", false, "Include the ORF sequence in tsv/json output")
	strandFlag := fs.String("strand", "both", "Strand to search: +, -, or both")
	outFmt := fs.String("outfmt", "tsv", "Output format: 'tsv', 'gff' or 'json'")
	outFile := fs.String("out", "", "Write output to file (optional)")
	summaryFlag := fs.Bool("summary", false, "Print ORF summary to stdout")
	fs.Parse(args)

	validStrands := map[string]bool{"+": true, "-": true, "both": true}
	if !validStrands[*strandFlag] {
		log.Fatalf("Invalid strand: %s (choose +, -, or both)", *strandFlag)
	}
	if *outFmt != "tsv" && *outFmt != "gff" && *outFmt != "json" {
		log.Fatalf("Invalid -outfmt: %s (choose 'tsv', 'gff' or 'json')", *outFmt)
	}
	if *inFile == "" {
		log.Fatal("Error: -in_file is required")
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

	records, err := fasta.ParseFile(*inFile)
	if err != nil {
		log.Fatalf("Failed to read FASTA: %v", err)
	}

	var rows []Row
	for _, rec := range records {
		rows = append(rows, ScanRecord(rec, *strandFlag, *minLen)...)
	}

	switch *outFmt {
	case "gff":
		if err := writeGFF(output, rows); err != nil {
			log.Fatalf("Failed to write GFF: %v", err)
		}
	case "json":
		if err := writeJSON(output, rows, *showSeq); err != nil {
			log.Fatalf("Failed to write JSON: %v", err)
		}
	default:
		writeTSV(output, rows, *showSeq)
	}

	if *summaryFlag {
		s := Summarize(rows)
		avg := 0.0
		if s.Total > 0 {
			avg = float64(s.TotalLength) / float64(s.Total)
		}
		fmt.Fprintln(os.Stdout, "\n=== ORF Summary ===")
		fmt.Fprintf(os.Stdout, "Total ORFs: %d\n", s.Total)
		fmt.Fprintf(os.Stdout, "  Forward strand: %d\n", s.Forward)
		fmt.Fprintf(os.Stdout, "  Reverse strand: %d\n", s.Reverse)
		fmt.Fprintf(os.Stdout, "Longest ORF: %d bp (%s:%d-%d)\n",
			s.LongestLength, s.LongestSeqID, s.LongestStart, s.LongestEnd)
		fmt.Fprintf(os.Stdout, "Average ORF length: %.1f bp\n", avg)
		fmt.Fprintln(os.Stdout, "Frame usage:")
		for frame, count := range s.FrameCounts {
			fmt.Fprintf(os.Stdout, "  %s: %d\n", frame, count)
		}
	}
}
