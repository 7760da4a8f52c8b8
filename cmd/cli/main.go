// Offline analyzer: runs the analysis pipeline on local files and
// writes the report as JSON or a rendered HTML page.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"guardrails/adapters/ingest"
	"guardrails/domain/dataset"
	"guardrails/internal/analysis"
	"guardrails/internal/render"
)

func main() {
	datasetPath := flag.String("dataset", "", "path to the dataset file (.csv or .xlsx)")
	baselinePath := flag.String("baseline", "", "optional path to a baseline file for drift comparison")
	outPath := flag.String("o", "", "write the JSON report to this file instead of stdout")
	htmlPath := flag.String("html", "", "also write an HTML rendering of the report")
	flag.Parse()

	if *datasetPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ds, err := decodeFile(*datasetPath)
	if err != nil {
		log.Fatalf("[cli] Failed to read dataset: %v", err)
	}

	var baseline *dataset.Dataset
	if *baselinePath != "" {
		baseline, err = decodeFile(*baselinePath)
		if err != nil {
			log.Fatalf("[cli] Failed to read baseline: %v", err)
		}
	}

	result := analysis.Analyze(ds, baseline)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("[cli] Failed to encode report: %v", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, output, 0o644); err != nil {
			log.Fatalf("[cli] Failed to write report: %v", err)
		}
	} else {
		fmt.Println(string(output))
	}

	if *htmlPath != "" {
		if err := os.WriteFile(*htmlPath, render.HTML(&result), 0o644); err != nil {
			log.Fatalf("[cli] Failed to write HTML report: %v", err)
		}
	}
}

func decodeFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.Decode(path, f)
}
