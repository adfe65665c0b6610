package main

import (
	"fmt"
	"os"
	"strings"

	"gene_lab_go/benchmark"
	version_control "gene_lab_go/config"
	"gene_lab_go/gene_eval"
	"gene_lab_go/orf_finder"
	"gene_lab_go/orf_overview"
	"gene_lab_go/practice_gen"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Gene Lab - Custom Help Menu
Usage:
  gene_lab <tool> [options]

Tools:
  orf_finder		Find open reading frames in a genome
  gene_eval		Score predicted ORFs against a reference annotation
  orf_overview		Length, GC and codon-usage statistics of predicted ORFs
  practice_gen		Generate a practice genome with planted genes + truth GFF

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Gene Lab - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tGene Lab:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tORF Finder:\t\t%s\n", version_control.ORF_Finder)
	fmt.Printf("\tGene Eval:\t\t%s\n", version_control.Gene_Eval)
	fmt.Printf("\tORF Overview:\t\t%s\n", version_control.ORF_Overview)
	fmt.Printf("\tPractice Gen:\t\t%s\n", version_control.Practice_Gen)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "orf_finder":
			orf_finder.Run(cleanedArgs)
		case "gene_eval":
			gene_eval.Run(cleanedArgs)
		case "orf_overview":
			orf_overview.Run(cleanedArgs)
		case "practice_gen":
			practice_gen.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("gene_lab %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
