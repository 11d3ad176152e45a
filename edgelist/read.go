package edgelist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrRead wraps malformed delimited input or a failing reader.
var ErrRead = errors.New("edgelist: read failed")

// ReadTable parses delimited text whose first record is the header.
// Quotes are treated literally (STRING and BioMart exports are unquoted TSV)
// and ragged rows are returned as is so that Build can report them.
func ReadTable(r io.Reader, delim rune) (Table, error) {
	if delim == 0 {
		delim = '\t'
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("%w: missing header", ErrSchema)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: header: %v", ErrRead, err)
	}
	t := Table{Header: trimAll(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: %v", ErrRead, err)
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, nil
}

// ReadSeeds reads one identifier per line. Lines are trimmed, blank lines
// are skipped and repeated identifiers keep their first position.
func ReadSeeds(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	err := scanLines(r, func(line string) error {
		if !seen[line] {
			seen[line] = true
			out = append(out, line)
		}
		return nil
	})

	return out, err
}

// ReadTaxIDs reads one integer NCBI taxonomy identifier per line.
func ReadTaxIDs(r io.Reader) ([]int, error) {
	var out []int
	n := 0
	err := scanLines(r, func(line string) error {
		n++
		id, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%w: tax id %d: %q is not an integer", ErrRead, n, line)
		}
		out = append(out, id)
		return nil
	})

	return out, err
}

// scanLines calls fn for every non-blank trimmed line of r.
func scanLines(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}

	return nil
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}
