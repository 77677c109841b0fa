package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/pdfoutline/internal/batch"
	"github.com/docsift/pdfoutline/internal/config"
	"github.com/docsift/pdfoutline/internal/outline"
	"github.com/docsift/pdfoutline/internal/report"
)

var (
	batchMode    = flag.Bool("batch", false, "Process every PDF in the given directory")
	outputDir    = flag.String("output", "output", "Output directory for extraction results")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	debugMode    = flag.Bool("debug", false, "Enable debug output")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file or directory path required\n\n")
		printUsage()
		os.Exit(1)
	}

	target := flag.Arg(0)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: Path not found: %s\n", target)
		os.Exit(1)
	}

	if *batchMode {
		runBatch(target)
		return
	}

	runSingle(target)
}

// runSingle extracts one document and prints the outline
func runSingle(pdfPath string) {
	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve path: %v\n", err)
		os.Exit(1)
	}

	extractor := outline.NewExtractor(*debugMode)
	result := extractor.Extract(absPath)

	if err := outputResult(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}

	if result.Failed() {
		os.Exit(1)
	}

	// In text mode the structured result is also saved next to the input
	if *outputFormat == "text" {
		jsonPath := strings.TrimSuffix(absPath, filepath.Ext(absPath)) + "_outline.json"
		if err := report.WriteJSON(jsonPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving JSON result: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved: %s\n", jsonPath)
	}
}

// runBatch processes a whole directory and writes reports to the output
// directory
func runBatch(directory string) {
	cfg := config.DefaultConfig()
	cfg.PDFDirectory = directory
	cfg.OutputDir = *outputDir
	if *debugMode {
		cfg.LogLevel = "debug"
	}

	processor := batch.NewProcessor(cfg)
	batchReport, err := processor.ProcessDirectory(directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing directory: %v\n", err)
		os.Exit(1)
	}

	if *outputFormat == "json" {
		if err := outputJSON(batchReport); err != nil {
			fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Processed %d files (%d successful, %d failed)\n",
		batchReport.Summary.TotalFiles, batchReport.Summary.Successful, batchReport.Summary.Failed)
	fmt.Printf("Total headings found: %d\n", batchReport.Summary.TotalHeadingsFound)
	fmt.Printf("Reports written to: %s\n", *outputDir)
}

func outputResult(result *outline.Result) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func outputText(result *outline.Result) error {
	if result.Failed() {
		fmt.Printf("Extraction failed: %s\n", result.Error)
		return nil
	}

	fmt.Printf("Title: %s\n", result.Title)
	fmt.Printf("Method: %s\n", result.Method)
	fmt.Printf("Headings: %d\n", len(result.Outline))

	if len(result.Outline) == 0 {
		return nil
	}

	fmt.Println()
	for _, entry := range result.Outline {
		indent := ""
		switch entry.Level {
		case outline.LevelH2:
			indent = "  "
		case outline.LevelH3:
			indent = "    "
		}
		fmt.Printf("%s%s %s (page %d)\n", indent, entry.Level, entry.Text, entry.Page)
	}

	return nil
}

func printHelp() {
	fmt.Println("PDF Outline Extractor - Detect titles and heading hierarchies in PDF documents")
	fmt.Println()
	fmt.Println("Extracts a document outline either from the PDF's native bookmarks or,")
	fmt.Println("when those are missing or too sparse, by running pattern, font-size, and")
	fmt.Println("position heuristics over the document text.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -batch         Process every PDF in the given directory")
	fmt.Println("  -output        Output directory for batch reports (default: output)")
	fmt.Println("  -format        Output format: text (default), json")
	fmt.Println("  -debug         Enable debug output")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  pdfoutline document.pdf")
	fmt.Println("  pdfoutline -format json document.pdf")
	fmt.Println("  pdfoutline -batch -output reports ./papers")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pdfoutline [OPTIONS] <pdf_file>")
	fmt.Println("  pdfoutline -batch [OPTIONS] <directory>")
}

func init() {
	flag.Usage = func() {
		printHelp()
	}
}
