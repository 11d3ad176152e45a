// Package edgelist builds protein interaction graphs from tabular edge lists.
//
// A Table is read from delimited text (ReadTable), the two endpoint columns
// are named by a Columns adapter (explicit, or one of the presets StringDB,
// StringDBNames, Paralogs, Orthologs) and Build turns every row into an
// undirected edge carrying the remaining cells as attributes.
//
// Helpers ReadSeeds and ReadTaxIDs read line-oriented inputs, and
// SelectOrthologs projects an NCBI gene_orthologs table onto the genes
// already present in a network.
//
// Errors:
//
//   - ErrSchema         shape problems (no rows, missing column, ragged row, empty endpoint).
//   - ErrRead           malformed input or reader failure.
//   - ErrUnknownPreset  LookupPreset with an unregistered name.
package edgelist
