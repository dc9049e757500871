// Command spellchecker corrects sentences read from stdin (or a file), one
// sentence per line, and prints the corrected lines.
//
// Usage:
//
//	echo "bugün ki tap okudum" | spellchecker
//	spellchecker -f sentences.txt -json
//	CONFIG_PATH=config.yaml spellchecker -variant trie
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"spellchecker/internal/app"
	"spellchecker/internal/config"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	asJSON := flag.Bool("json", false, "print one JSON result per line, edits included")
	variant := flag.String("variant", "", "override checker.variant: simple | ngram | context | trie")
	timeout := flag.Duration("t", time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*file, *variant, *asJSON, *timeout, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "spellchecker:", err)
		os.Exit(1)
	}
}

func run(file, variant string, asJSON bool, timeout time.Duration, stdout io.Writer) error {
	if variant != "" {
		if err := os.Setenv("CHECKER_VARIANT", variant); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	lines, err := readLines(r)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	results, err := svc.CorrectBatch(ctx, lines)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, res := range results {
		if asJSON {
			err = enc.Encode(res)
		} else {
			_, err = fmt.Fprintln(w, res.Corrected)
		}
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}
