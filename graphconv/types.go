// Package graphconv: graph object types, reconstruction metadata and
// sentinel errors.
package graphconv

import (
	"errors"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/tensor"
)

// Sentinel errors for conversion calls.
var (
	// ErrNoNodes indicates no entity table (or an empty type map) was supplied.
	ErrNoNodes = errors.New("graphconv: at least one entity table is required")

	// ErrInvalidColumn indicates a caller-named column is absent from its table.
	ErrInvalidColumn = errors.New("graphconv: named column not found")

	// ErrWrongKind indicates a homogeneous operation applied to a
	// heterogeneous graph, or vice versa.
	ErrWrongKind = errors.New("graphconv: operation does not match graph kind")

	// ErrUnknownType indicates a reconstruction filter names a node or edge
	// type the graph does not hold.
	ErrUnknownType = errors.New("graphconv: unknown node or edge type")
)

// Kind tags a Graph as homogeneous or heterogeneous. It is decided once at
// the entry point; downstream code switches on it instead of probing shape.
type Kind int

const (
	// Homogeneous graphs hold one node set and at most one edge set.
	Homogeneous Kind = iota
	// Heterogeneous graphs hold node sets per type name and edge sets per
	// (source, relation, target) triple.
	Heterogeneous
)

// DefaultNodeType keys the single node set of a homogeneous graph.
const DefaultNodeType = "default"

// DefaultRelation keys the single edge set of a homogeneous graph.
var DefaultRelation = Relation{Source: DefaultNodeType, Name: "edge", Target: DefaultNodeType}

// IDSourceIndex is the identifier-source marker for row identity, as opposed
// to a named identifier column.
const IDSourceIndex = "index"

// Relation names an edge type: edges of this set run from entities of type
// Source to entities of type Target.
type Relation struct {
	Source string
	Name   string
	Target string
}

// NodeSet holds one entity type's tensorized data plus the metadata needed to
// reconstruct its table. Immutable once built.
type NodeSet struct {
	// Type is the entity type name (DefaultNodeType for homogeneous graphs).
	Type string

	// Features has one row per entity and one column per extracted feature.
	// Never nil; zero-width when no feature columns were extracted.
	Features *tensor.Matrix

	// Positions holds [x, y] coordinates per entity, or nil when the source
	// table had no geometry column.
	Positions *tensor.Matrix

	// Labels holds label columns, or nil when none were designated and no
	// conventional "label" column existed.
	Labels *tensor.Matrix

	// FeatureCols and LabelCols record the extracted column names, in matrix
	// column order.
	FeatureCols []string
	LabelCols   []string

	// IDSource is IDSourceIndex when identifiers came from row identity,
	// otherwise the identifier column name.
	IDSource string

	// OriginalIDs lists the original identifiers in index order.
	OriginalIDs []geotable.Value

	// IndexNames records the source table's index level names (nil when the
	// table had no index).
	IndexNames []string

	mapping map[geotable.Value]int
}

// Len returns the number of entities in the set.
func (ns *NodeSet) Len() int { return len(ns.OriginalIDs) }

// IndexOf resolves an original identifier to its dense integer index.
func (ns *NodeSet) IndexOf(id geotable.Value) (int, bool) {
	i, ok := ns.mapping[id]
	return i, ok
}

// EdgeSet holds one relation type's integer-indexed connectivity plus
// reconstruction metadata. Immutable once built. Sources[i] and Targets[i]
// index into the node sets named by Relation; only resolvable rows survive
// construction, in ascending original-row order.
type EdgeSet struct {
	Relation Relation

	Sources []int
	Targets []int

	// Features has one row per surviving edge. Never nil; zero-width when no
	// feature columns were extracted.
	Features    *tensor.Matrix
	FeatureCols []string

	// IndexNames and IndexValues preserve the relation table's original row
	// index (per level, aligned to surviving rows). Nil when the table had
	// no index.
	IndexNames  []string
	IndexValues [][]geotable.Value
}

// Len returns the number of surviving edges.
func (es *EdgeSet) Len() int { return len(es.Sources) }

// Graph is the typed, tensorized graph object. It is assembled in one pass by
// ToGraph/ToHeteroGraph and immutable thereafter; a new conversion produces a
// new Graph.
type Graph struct {
	kind      Kind
	nodeTypes []string   // sorted
	edgeTypes []Relation // sorted
	nodes     map[string]*NodeSet
	edges     map[Relation]*EdgeSet
	crs       string
	device    tensor.Device
	dtype     tensor.DType
}

// Kind returns the graph's variant tag.
func (g *Graph) Kind() Kind { return g.kind }

// NodeTypes returns the node type names in deterministic (sorted) order.
func (g *Graph) NodeTypes() []string { return append([]string(nil), g.nodeTypes...) }

// Relations returns the edge types in deterministic (sorted) order.
func (g *Graph) Relations() []Relation { return append([]Relation(nil), g.edgeTypes...) }

// Nodes returns the node set for a type, or nil when absent.
func (g *Graph) Nodes(nodeType string) *NodeSet { return g.nodes[nodeType] }

// Edges returns the edge set for a relation, or nil when absent.
func (g *Graph) Edges(rel Relation) *EdgeSet { return g.edges[rel] }

// CRS returns the coordinate-reference tag shared by all entity types, or ""
// when none was present or the types disagreed.
func (g *Graph) CRS() string { return g.crs }

// Device returns the resolved placement target of the graph's matrices.
func (g *Graph) Device() tensor.Device { return g.device }

// DType returns the numeric width of the graph's matrices.
func (g *Graph) DType() tensor.DType { return g.dtype }
