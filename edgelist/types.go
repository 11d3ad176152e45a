package edgelist

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSchema indicates that a table does not fit the expected edge-list shape:
// no rows, a missing endpoint column, a ragged row, or an empty endpoint.
var ErrSchema = errors.New("edgelist: schema mismatch")

// ErrUnknownPreset is returned by LookupPreset for an unregistered name.
var ErrUnknownPreset = errors.New("edgelist: unknown column preset")

// Table is a header plus rectangular records, as read from a delimited file.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Index returns the position of column name in the header, or -1.
func (t Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// Columns names the two endpoint columns of an edge-list table.
type Columns struct {
	Source string
	Target string
}

// Well-known column layouts.
var (
	// StringDB is the STRING interaction export keyed by protein identifiers.
	StringDB = Columns{Source: "#node1", Target: "node2"}
	// StringDBNames is the STRING network export keyed by preferred names.
	StringDBNames = Columns{Source: "preferredName_A", Target: "preferredName_B"}
	// Paralogs is the BioMart paralog export.
	Paralogs = Columns{Source: "external_gene_name", Target: "hsapiens_paralog_associated_gene_name"}
	// Orthologs is the NCBI gene_orthologs projection.
	Orthologs = Columns{Source: "GeneID", Target: "Other_GeneID"}
)

var presets = map[string]Columns{
	"stringdb":       StringDB,
	"stringdb-names": StringDBNames,
	"paralogs":       Paralogs,
	"orthologs":      Orthologs,
}

// LookupPreset returns the registered column layout called name.
func LookupPreset(name string) (Columns, error) {
	c, ok := presets[name]
	if !ok {
		return Columns{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return c, nil
}

// PresetNames lists registered preset names in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Validate checks that both endpoint columns are distinct, non-empty and
// present in header, and returns their positions.
func (c Columns) Validate(header []string) (src, tgt int, err error) {
	if c.Source == "" || c.Target == "" {
		return -1, -1, fmt.Errorf("%w: endpoint column names must be non-empty", ErrSchema)
	}
	if c.Source == c.Target {
		return -1, -1, fmt.Errorf("%w: source and target column are both %q", ErrSchema, c.Source)
	}
	t := Table{Header: header}
	if src = t.Index(c.Source); src < 0 {
		return -1, -1, fmt.Errorf("%w: column %q not found", ErrSchema, c.Source)
	}
	if tgt = t.Index(c.Target); tgt < 0 {
		return -1, -1, fmt.Errorf("%w: column %q not found", ErrSchema, c.Target)
	}

	return src, tgt, nil
}

// BuildOption customizes Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	skipIncomplete bool
	keepAttrs      bool
}

func defaultBuildOptions() buildOptions {
	return buildOptions{keepAttrs: true}
}

// WithSkipIncomplete drops rows with an empty endpoint instead of failing.
// BioMart exports leave the paralog column blank for genes without paralogs.
func WithSkipIncomplete() BuildOption {
	return func(o *buildOptions) { o.skipIncomplete = true }
}

// WithoutAttrs discards non-endpoint columns.
func WithoutAttrs() BuildOption {
	return func(o *buildOptions) { o.keepAttrs = false }
}
