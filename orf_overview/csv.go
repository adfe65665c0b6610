package orf_overview

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSVReport writes the overview statistics to <filename>.csv.
func WriteCSVReport(filename string, stats OverviewStats) error {
	f, err := os.Create(filename + ".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	headers := []string{
		"TotalORFs", "TotalLength", "MinLength", "MaxLength",
		"MeanLength", "LengthStdDev", "MeanGC", "GCStdDev",
	}
	values := []string{
		strconv.Itoa(stats.TotalORFs),
		strconv.Itoa(stats.TotalLength),
		strconv.Itoa(stats.MinLength),
		strconv.Itoa(stats.MaxLength),
		fmt.Sprintf("%.2f", stats.MeanLength),
		fmt.Sprintf("%.2f", stats.LengthStdDev),
		fmt.Sprintf("%.2f", stats.MeanGC),
		fmt.Sprintf("%.2f", stats.GCStdDev),
	}
	if err := writer.Write(headers); err != nil {
		return err
	}
	return writer.Write(values)
}

// WriteCodonCSV writes the codon usage table to <filename>_codons.csv.
func WriteCodonCSV(filename string, usage []CodonCount) error {
	f, err := os.Create(filename + "_codons.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"Codon", "Count", "Fraction"}); err != nil {
		return err
	}
	for _, c := range usage {
		row := []string{c.Codon, strconv.Itoa(c.Count), fmt.Sprintf("%.4f", c.Fraction)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
