// Package tables loads the line-oriented correction tables: merges, splits,
// misspellings and the context association list.
//
// Files are memory mapped read-only and scanned once at startup; malformed
// lines are skipped.
package tables

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const (
	MergedFile      = "merged.txt"
	SplitFile       = "split.txt"
	MisspelledFile  = "misspellings.txt"
	ContextListFile = "context_list.txt"
)

// Tables holds every correction table in memory.
type Tables struct {
	Merged     map[string]string   // "w1 w2" -> merged word
	Split      map[string]string   // word -> space separated expansion
	Misspelled map[string]string   // misspelled word -> correct form
	Context    map[string][]string // root -> associated words
}

// New returns empty tables.
func New() *Tables {
	return &Tables{
		Merged:     make(map[string]string),
		Split:      make(map[string]string),
		Misspelled: make(map[string]string),
		Context:    make(map[string][]string),
	}
}

// FileName returns the on-disk name of a table for the given domain.
func FileName(domain, name string) string {
	if domain == "" {
		return name
	}
	return domain + "_" + name
}

// Load reads all tables from dir. The context list is optional, the others
// are required.
func Load(dir, domain string) (*Tables, error) {
	t := New()
	if err := t.LoadMerged(filepath.Join(dir, FileName(domain, MergedFile))); err != nil {
		return nil, err
	}
	if err := t.LoadSplit(filepath.Join(dir, FileName(domain, SplitFile))); err != nil {
		return nil, err
	}
	if err := t.LoadMisspelled(filepath.Join(dir, FileName(domain, MisspelledFile))); err != nil {
		return nil, err
	}
	err := t.LoadContext(filepath.Join(dir, FileName(domain, ContextListFile)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return t, nil
}

// LoadMerged reads "token token correction" lines.
func (t *Tables) LoadMerged(path string) error {
	return ReadLines(path, func(line string) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return
		}
		t.Merged[fields[0]+" "+fields[1]] = fields[2]
	})
}

// LoadSplit reads "token expansion1 expansion2 ..." lines.
func (t *Tables) LoadSplit(path string) error {
	return ReadLines(path, func(line string) {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return
		}
		t.Split[fields[0]] = strings.Join(fields[1:], " ")
	})
}

// LoadMisspelled reads "misspelled correct" lines.
func (t *Tables) LoadMisspelled(path string) error {
	return ReadLines(path, func(line string) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return
		}
		t.Misspelled[fields[0]] = fields[1]
	})
}

// LoadContext reads "root\tassoc1 assoc2 ..." lines.
func (t *Tables) LoadContext(path string) error {
	return ReadLines(path, func(line string) {
		items := strings.Split(line, "\t")
		if len(items) != 2 || items[0] == "" {
			return
		}
		words := strings.Fields(items[1])
		if len(words) == 0 {
			return
		}
		t.Context[items[0]] = words
	})
}

// ReadLines maps path into memory and calls fn for every non-empty line with
// surrounding whitespace removed.
func ReadLines(path string, fn func(line string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tables: open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("tables: stat %s: %w", path, err)
	}
	// a zero length mapping is rejected by the kernel
	if info.Size() == 0 {
		return nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("tables: mmap %s: %w", path, err)
	}
	defer data.Unmap()

	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("tables: scan %s: %w", path, err)
	}
	return nil
}
