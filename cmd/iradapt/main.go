// Command iradapt converts a capture-loop transcript on stdin into the
// group lines irdecode consumes.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/banshee-data/ir.report/internal/capture"
	"github.com/banshee-data/ir.report/internal/monitoring"
)

func main() {
	verbose := flag.Bool("verbose", false, "report skipped transcript lines on stderr")
	flag.Parse()

	if !*verbose {
		monitoring.SetLogger(nil)
	}

	if err := capture.Adapt(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("iradapt: %v", err)
	}
}
