// Package netbridge maps typed, tensorized graphs onto a general-purpose
// attributed network model built on gonum's graph interfaces, and back.
//
// Forward (ToNetwork): entities become nodes, relations become edges. For
// heterogeneous graphs every entity type's nodes are offset into one shared
// integer identifier space: type t's nodes occupy the contiguous block
// starting at the running total of prior types' counts, preserving each
// type's internal ordering. Every node and edge is tagged with its
// origin type. Attribute values are attached under their original column
// names when the graph recorded them, under generic positional names
// ("feat_0", "label_0", "edge_feat_0", ...) otherwise.
//
// The Network keeps a complete ordered node and edge list of its own; the
// embedded gonum simple.UndirectedGraph additionally serves analysis
// algorithms but omits self-loops, which gonum's simple graphs reject.
//
// Backward (FromNetwork): the network's attribute and coordinate export is
// written into ordinary tables and run through the standard graphconv
// pipeline. The result is always a homogeneous graph over the shared integer
// identifier space; per-type blocks and type tags are not split back out.
// This direction is therefore not a literal inverse of ToNetwork for
// heterogeneous graphs; round-tripping type structure requires going through
// FromHeteroGraph/ToHeteroGraph instead.
package netbridge
