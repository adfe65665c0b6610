package practice_gen

import (
	"compress/gzip"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gene_lab_go/gff"
	common "gene_lab_go/utils"
)

// Run executes the practice_gen tool.
func Run(args []string) {

	fs := flag.NewFlagSet("practice_gen", flag.ExitOnError)

	length := fs.Int("length", 10000, "Length of generated genome")
	nGenes := fs.Int("n_genes", 10, "Number of genes to plant")
	minGene := fs.Int("min_gene", 90, "Minimum planted gene length (nt)")
	maxGene := fs.Int("max_gene", 900, "Maximum planted gene length (nt)")
	gc := fs.Float64("gc_bias", 0.5, "GC bias of the background sequence (0.0-1.0)")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	name := fs.String("name", "practice_genome", "Sequence name (FASTA header)")
	outFile := fs.String("out_file", "", "Output FASTA file (stdout if empty)")
	gffOut := fs.String("gff_out", "", "Write the truth annotation to this GFF file")
	gzipOption := fs.Bool("gzip", false, "Compress FASTA output using gzip (.gz)")

	fs.Parse(args)

	if *gc < 0.0 || *gc > 0.99 {
		fmt.Println("GC bias must be between 0.0 and 0.99")
		os.Exit(1)
	}
	if *length <= 0 {
		fmt.Println("Genome length must be positive")
		os.Exit(1)
	}
	if *minGene < 9 || *minGene > *maxGene {
		fmt.Println("Gene length bounds must satisfy 9 <= min_gene <= max_gene")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	genome := randSeq(rng, *length, *gc)
	planted := PlantGenes(rng, genome, *name, *nGenes, *minGene, *maxGene)
	if len(planted) < *nGenes {
		fmt.Fprintf(os.Stderr, "Warning: placed %d of %d genes (genome too crowded)\n",
			len(planted), *nGenes)
	}

	fasta := fmt.Sprintf(">%s\n%s", *name, common.WrapFasta(string(genome), 60))

	if *outFile == "" {
		if *gzipOption {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		fmt.Print(fasta)
	} else {
		outputPath := *outFile
		if *gzipOption {
			outputPath += ".gz"
			file, err := os.Create(outputPath)
			if err != nil {
				fmt.Println("Error creating gzip file:", err)
				os.Exit(1)
			}
			defer file.Close()

			writer := gzip.NewWriter(file)
			defer writer.Close()

			if _, err := writer.Write([]byte(fasta)); err != nil {
				fmt.Println("Error writing compressed data:", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote compressed genome to %s\n", outputPath)
		} else {
			if err := os.WriteFile(outputPath, []byte(fasta), 0644); err != nil {
				fmt.Println("Error writing to file:", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote genome to %s\n", outputPath)
		}
	}

	if *gffOut != "" {
		f, err := os.Create(*gffOut)
		if err != nil {
			fmt.Println("Error creating GFF file:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := gff.Write(f, planted); err != nil {
			fmt.Println("Error writing GFF:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote truth annotation to %s\n", *gffOut)
	}
}
