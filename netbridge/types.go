// Package netbridge: attributed network types over gonum's graph interfaces,
// plus sentinel errors.
package netbridge

import (
	"errors"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrEmptyNetwork indicates a network with no nodes was given to FromNetwork.
var ErrEmptyNetwork = errors.New("netbridge: network has no nodes")

// Node is an attributed network node. It implements gonum's graph.Node.
// Immutable once built.
type Node struct {
	id int64

	// Type is the origin entity type ("default" for homogeneous graphs).
	Type string

	// Attrs holds feature and label values keyed by column name (or by a
	// generic positional name when no column name was recorded).
	Attrs map[string]float64

	// Pos is the node's coordinate; valid only when HasPos is true.
	Pos    orb.Point
	HasPos bool
}

// ID returns the node's identifier in the shared integer space.
func (n *Node) ID() int64 { return n.id }

// Edge is an attributed network edge. It implements gonum's graph.Edge.
type Edge struct {
	from, to *Node

	// Type is the origin relation name.
	Type string

	// Attrs holds edge feature values keyed by column name.
	Attrs map[string]float64
}

// From returns the edge's first endpoint.
func (e *Edge) From() graph.Node { return e.from }

// To returns the edge's second endpoint.
func (e *Edge) To() graph.Node { return e.to }

// ReversedEdge returns the edge with its endpoints swapped.
func (e *Edge) ReversedEdge() graph.Edge {
	return &Edge{from: e.to, to: e.from, Type: e.Type, Attrs: e.Attrs}
}

// Network is the attributed network model. It owns the complete node and
// edge lists; the embedded gonum graph mirrors them for analysis but omits
// self-loops (rejected by simple graphs).
type Network struct {
	und    *simple.UndirectedGraph
	nodes  []*Node // ascending ID order
	edges  []*Edge // relation order, then row order
	hetero bool

	nodeTypes []string
	offsets   map[string]int64
	crs       string
}

// Undirected exposes the gonum view for analysis algorithms.
func (nw *Network) Undirected() graph.Undirected { return nw.und }

// Nodes returns all nodes in ascending identifier order.
func (nw *Network) Nodes() []*Node { return append([]*Node(nil), nw.nodes...) }

// Edges returns all edges, including self-loops absent from the gonum view.
func (nw *Network) Edges() []*Edge { return append([]*Edge(nil), nw.edges...) }

// Hetero reports whether the source graph was heterogeneous.
func (nw *Network) Hetero() bool { return nw.hetero }

// NodeTypes returns the origin entity type names in offset order.
func (nw *Network) NodeTypes() []string { return append([]string(nil), nw.nodeTypes...) }

// Offset returns the first shared-space identifier of an entity type's block.
func (nw *Network) Offset(nodeType string) (int64, bool) {
	off, ok := nw.offsets[nodeType]
	return off, ok
}

// CRS returns the coordinate-reference tag carried over from the graph.
func (nw *Network) CRS() string { return nw.crs }
