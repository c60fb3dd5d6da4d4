// Package graphconv converts spatial tables to typed, tensorized graph
// objects and back, losslessly.
//
// The forward direction (ToGraph, ToHeteroGraph) maps each entity table to a
// dense integer index space [0, n): row i gets index i, identifiers come from
// a named column or from row identity. Relation tables are resolved to pairs
// of integers into the endpoint types' index spaces; rows whose endpoints
// cannot be resolved are dropped, never errored. Attribute columns become
// matrices with one row per record; absent columns yield zero-width matrices.
// Point geometries contribute coordinates directly, any other geometry is
// reduced to its centroid.
//
// Every Graph embeds the metadata needed to invert the conversion: identifier
// mappings, identifier sources, original identifier order, column names,
// index names and values, and the coordinate-reference tag. The backward
// direction (FromGraph, FromHeteroGraph) reads only that metadata, through a
// Descriptor produced once by Describe, and reproduces the original
// identifiers, order, geometry and column names for every entity whose edges
// survived conversion.
//
// Graphs come in two kinds, decided once at the entry point and never
// re-inspected: Homogeneous (one node set, one edge set) and Heterogeneous
// (node sets keyed by type name, edge sets keyed by (source, relation,
// target) triples). Both kinds share one algorithm family; the homogeneous
// entry points are thin fronts over it.
//
// Conversion is pure and synchronous: input tables are never mutated, each
// call either returns a fully built Graph or an error, and no partial result
// escapes. Soft data-quality issues (dropped edges, undetectable endpoint
// columns) degrade to empty results and are reported through an optional
// zap logger.
//
// Errors:
//
//	ErrNoNodes        - no entity table (or an empty type map) was supplied.
//	ErrInvalidColumn  - a caller-named identifier/endpoint column is absent.
//	ErrWrongKind      - a homogeneous operation on a heterogeneous graph, or
//	                    vice versa.
//	ErrUnknownType    - a reconstruction filter names a type the graph lacks.
//
// Device and numeric-width arguments are validated eagerly through the
// tensor package (ErrInvalidDevice, ErrInvalidDType, ErrBackendUnavailable).
package graphconv
