package edgelist

import (
	"fmt"
	"strconv"
	"strings"
)

// HumanTaxID is the NCBI taxonomy identifier of Homo sapiens.
const HumanTaxID = 9606

// Column names of the NCBI gene_orthologs table.
const (
	colTaxID      = "#tax_id"
	colOtherTaxID = "Other_tax_id"
)

// SelectOrthologs narrows an NCBI gene_orthologs table to human genes that
// are already part of the network and whose ortholog lives in one of the
// requested species. The result keeps only the Orthologs columns.
func SelectOrthologs(t Table, taxIDs []int, nodes map[string]bool) (Table, error) {
	idx := make(map[string]int, 4)
	for _, name := range []string{colTaxID, colOtherTaxID, Orthologs.Source, Orthologs.Target} {
		i := t.Index(name)
		if i < 0 {
			return Table{}, fmt.Errorf("%w: column %q not found", ErrSchema, name)
		}
		idx[name] = i
	}
	wanted := make(map[int]bool, len(taxIDs))
	for _, id := range taxIDs {
		wanted[id] = true
	}

	out := Table{Header: []string{Orthologs.Source, Orthologs.Target}}
	for n, row := range t.Rows {
		if len(row) != len(t.Header) {
			return Table{}, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrSchema, n+1, len(row), len(t.Header))
		}
		if tax, ok := atoi(row[idx[colTaxID]]); !ok || tax != HumanTaxID {
			continue
		}
		if other, ok := atoi(row[idx[colOtherTaxID]]); !ok || !wanted[other] {
			continue
		}
		gene := row[idx[Orthologs.Source]]
		if !nodes[gene] {
			continue
		}
		out.Rows = append(out.Rows, []string{gene, row[idx[Orthologs.Target]]})
	}

	return out, nil
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
