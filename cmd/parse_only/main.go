// Command parse_only parses a file of queries and writes their call trees as JSON,
// after checking that every call refers to a known relation.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/brunokim/relational/parser"
)

var (
	inputFilename  = flag.String("input", "", "Input file (required)")
	outputFilename = flag.String("output", "", "Output file (required)")
	consultFile    = flag.String("consult", "", "YAML fact file with relations used by the queries")
)

func main() {
	flag.Parse()
	if *inputFilename == "" {
		log.Fatalf("-input is required")
	}
	if *outputFilename == "" {
		log.Fatalf("-output is required")
	}
	input, err := os.Open(*inputFilename)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer input.Close()
	bs, err := io.ReadAll(input)
	if err != nil {
		log.Fatalf("input: %v", err)
	}
	r := parser.NewRegistry()
	if *consultFile != "" {
		facts, err := os.ReadFile(*consultFile)
		if err != nil {
			log.Fatalf("consult: %v", err)
		}
		if err := r.Consult(facts); err != nil {
			log.Fatalf("consult: %v", err)
		}
	}
	queries, err := parser.ParseAll(string(bs))
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	for _, q := range queries {
		if _, err := r.Decode(q); err != nil {
			log.Fatalf("decode: %v", err)
		}
	}
	output, err := os.Create(*outputFilename)
	if err != nil {
		log.Fatalf("open output: %v", err)
	}
	defer output.Close()
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(queries); err != nil {
		log.Fatalf("output: %v", err)
	}
	log.Printf("wrote %d queries to %s", len(queries), *outputFilename)
}
