// Package geotable provides the spatial tabular data model consumed and
// produced by the graph converters.
//
// A Table is a row-per-record collection of named attribute columns with an
// optional row Index (one or more named levels), an optional geometry column
// (github.com/paulmach/orb geometries) and an optional coordinate-reference
// tag. Column order and row order are significant and preserved.
//
// Tables are immutable once built: constructors validate and copy their
// inputs, and accessors return copies or read-only views. This makes every
// downstream conversion a pure function over its input tables.
//
// Two table roles exist by convention, not by type:
//
//   - entity tables: one row per entity, identified by a column or by row
//     identity (the Index, or the ordinal position when no Index is set);
//   - relation tables: one row per link, referencing two entity identifiers
//     through named columns or through a two-level Index.
//
// Errors:
//
//	ErrRaggedColumns  - columns of differing lengths.
//	ErrUnknownColumn  - a data key or lookup names a column not declared.
//	ErrLengthMismatch - geometry or index length differs from row count.
//	ErrBadIndex       - index levels empty or of differing lengths.
package geotable
