// Command irdecode reads captured byte groups from stdin and prints the
// decoded 32-bit code words.
//
// Each input line of the form "(b0, b1, b2, b3)suffix" becomes
// "<hex-word> <suffix>"; every other line is skipped. A matched group
// that fails to parse aborts the run. There are no flags: the tool is a
// plain filter.
package main

import (
	"log"
	"os"

	"github.com/banshee-data/ir.report/internal/ircode"
)

func main() {
	if err := ircode.Decode(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("irdecode: %v", err)
	}
}
