package edgelist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ppinet/core"
)

// Build turns an edge-list table into an undirected simple graph.
//
// Every row contributes its two endpoints as vertices and, unless they are
// equal, one edge. A repeated unordered pair keeps the attributes of its
// first row. Cells of non-endpoint columns become edge attributes: values
// that parse as a float are stored as float64, others as string, and empty
// cells are omitted.
//
// Errors: ErrSchema when the table has no rows, an endpoint column is
// missing, a row length differs from the header, or an endpoint is empty
// (unless WithSkipIncomplete is given).
func Build(t Table, cols Columns, opts ...BuildOption) (*core.Graph, error) {
	o := defaultBuildOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrSchema)
	}
	si, ti, err := cols.Validate(t.Header)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for n, row := range t.Rows {
		if len(row) != len(t.Header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrSchema, n+1, len(row), len(t.Header))
		}
		src, tgt := row[si], row[ti]
		if src == "" || tgt == "" {
			if o.skipIncomplete {
				continue
			}
			return nil, fmt.Errorf("%w: row %d has an empty endpoint", ErrSchema, n+1)
		}
		if err = g.AddVertex(src); err != nil {
			return nil, fmt.Errorf("edgelist: row %d: %w", n+1, err)
		}
		if err = g.AddVertex(tgt); err != nil {
			return nil, fmt.Errorf("edgelist: row %d: %w", n+1, err)
		}
		if src == tgt || g.HasEdge(src, tgt) {
			continue
		}
		var attrs core.Attrs
		if o.keepAttrs {
			attrs = rowAttrs(t.Header, row, si, ti)
		}
		if _, err = g.AddEdge(src, tgt, attrs); err != nil {
			return nil, fmt.Errorf("edgelist: row %d: %w", n+1, err)
		}
	}

	return g, nil
}

// rowAttrs collects the non-endpoint cells of row.
func rowAttrs(header, row []string, si, ti int) core.Attrs {
	var attrs core.Attrs
	for i, cell := range row {
		if i == si || i == ti {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if attrs == nil {
			attrs = make(core.Attrs, len(row)-2)
		}
		attrs[header[i]] = parseCell(cell)
	}

	return attrs
}

// parseCell returns cell as float64 when it is numeric, otherwise as is.
func parseCell(cell string) any {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}

	return cell
}
