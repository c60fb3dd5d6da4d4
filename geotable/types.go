// Package geotable defines the Table and Index types plus sentinel errors.
package geotable

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for table construction and lookups.
var (
	// ErrRaggedColumns indicates attribute columns of differing lengths.
	ErrRaggedColumns = errors.New("geotable: columns must all have the same length")

	// ErrUnknownColumn indicates a data key or lookup names an undeclared column.
	ErrUnknownColumn = errors.New("geotable: unknown column")

	// ErrLengthMismatch indicates geometry or index length differs from the row count.
	ErrLengthMismatch = errors.New("geotable: geometry/index length must equal row count")

	// ErrBadIndex indicates index levels are empty or of differing lengths.
	ErrBadIndex = errors.New("geotable: index must have at least one level, all of equal length")
)

// Value is a single cell value. Values used as entity identifiers must be
// comparable (strings, integers, bools, ...), because they serve as map keys
// in identifier mappings.
type Value = any

// Index is a named, possibly multi-level row index. Level 0 is the outermost
// level. A two-level index on a relation table designates (source, target)
// endpoint identifiers.
type Index struct {
	names  []string
	levels [][]Value
}

// Table is an immutable row-per-record attributed table, optionally geometric.
// Construct with New; the zero value is an empty table.
type Table struct {
	rows     int
	colNames []string
	cols     map[string][]Value
	index    *Index
	geometry []orb.Geometry
	crs      string
}

// TableOption configures optional Table components at construction time.
type TableOption func(*Table) error

// WithIndex attaches a row index. Its length must equal the row count
// (a column-less table takes its row count from the index instead).
func WithIndex(ix *Index) TableOption {
	return func(t *Table) error {
		t.index = ix
		return nil
	}
}

// WithGeometry attaches a geometry column, one geometry per row. Entries may
// be nil for rows without geometry.
func WithGeometry(geoms []orb.Geometry) TableOption {
	return func(t *Table) error {
		t.geometry = append([]orb.Geometry(nil), geoms...)
		return nil
	}
}

// WithCRS tags the table with a coordinate-reference identifier (e.g. "EPSG:4326").
func WithCRS(crs string) TableOption {
	return func(t *Table) error {
		t.crs = crs
		return nil
	}
}
