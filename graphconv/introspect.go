package graphconv

// NodeInfo describes what optional data one node set holds.
type NodeInfo struct {
	Count        int
	HasFeatures  bool // Features wider than zero
	HasPositions bool
	HasLabels    bool
	HasMapping   bool // identifier metadata present
	HasIndexName bool
}

// EdgeInfo describes what optional data one edge set holds.
type EdgeInfo struct {
	Count           int
	HasConnectivity bool
	HasFeatures     bool
	HasIndexValues  bool
}

// Descriptor is the uniform description of a Graph's contents. It is
// computed once by Describe and consulted by every downstream consumer;
// reconstruction and the network bridge never re-inspect the Graph for
// presence of optional data.
type Descriptor struct {
	Hetero    bool
	NodeTypes []string
	EdgeTypes []Relation
	Nodes     map[string]NodeInfo
	Edges     map[Relation]EdgeInfo
	HasCRS    bool
	CRS       string
}

// Describe inspects a Graph (of either kind) and produces its Descriptor.
// Complexity: O(node types + edge types).
func Describe(g *Graph) Descriptor {
	d := Descriptor{
		Hetero:    g.kind == Heterogeneous,
		NodeTypes: g.NodeTypes(),
		EdgeTypes: g.Relations(),
		Nodes:     make(map[string]NodeInfo, len(g.nodes)),
		Edges:     make(map[Relation]EdgeInfo, len(g.edges)),
		HasCRS:    g.crs != "",
		CRS:       g.crs,
	}

	for nt, ns := range g.nodes {
		d.Nodes[nt] = NodeInfo{
			Count:        ns.Len(),
			HasFeatures:  ns.Features.Cols() > 0,
			HasPositions: ns.Positions != nil,
			HasLabels:    ns.Labels != nil && ns.Labels.Cols() > 0,
			HasMapping:   len(ns.OriginalIDs) > 0,
			HasIndexName: len(ns.IndexNames) > 0 && ns.IndexNames[0] != "",
		}
	}
	for rel, es := range g.edges {
		d.Edges[rel] = EdgeInfo{
			Count:           es.Len(),
			HasConnectivity: es.Len() > 0,
			HasFeatures:     es.Features.Cols() > 0,
			HasIndexValues:  len(es.IndexValues) > 0,
		}
	}
	return d
}
