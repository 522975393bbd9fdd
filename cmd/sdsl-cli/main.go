// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"sdsl/internal/errors"
	"sdsl/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sdsl <file.sdsl>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErrors, lexErr := parser.ParseSource(path, string(source))
	reporter := errors.NewReporter(path, string(source))

	if lexErr != nil {
		fmt.Print(reporter.FormatLexError(lexErr))
		color.Red("Parsing failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	for _, parseErr := range parseErrors {
		fmt.Print(reporter.FormatParseError(parseErr))
	}

	if len(parseErrors) > 0 {
		color.Red("Parsing failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	fmt.Println(program.String())
	color.Green("Successfully parsed %s in %s", path, formatDuration(time.Since(startTime)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
