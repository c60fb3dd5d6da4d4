package graphconv

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/tensor"
)

// FromGraph inverts a homogeneous Graph back into its entity and relation
// tables. Original identifiers, order, feature/label column names and
// geometry (points from stored positions, straight lines between endpoint
// positions for edges) are restored from the embedded metadata. The edge
// table is nil when the graph holds no edge set.
// Returns ErrWrongKind for heterogeneous graphs.
func FromGraph(g *Graph, opts ...Option) (nodes, edges *geotable.Table, err error) {
	if g.kind != Homogeneous {
		return nil, nil, fmt.Errorf("%w: graph is heterogeneous", ErrWrongKind)
	}
	d := Describe(g)

	nodes, err = reconstructNodeTable(g, d, DefaultNodeType)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := g.edges[DefaultRelation]; ok {
		edges, err = reconstructEdgeTable(g, d, DefaultRelation)
		if err != nil {
			return nil, nil, err
		}
	}
	return nodes, edges, nil
}

// FromHeteroGraph inverts a heterogeneous Graph into type-keyed entity tables
// and triple-keyed relation tables, filtered to the types named by
// WithNodeTypes / WithEdgeTypes (default: all). Returns ErrWrongKind for
// homogeneous graphs and ErrUnknownType for a filter naming an absent type.
func FromHeteroGraph(g *Graph, opts ...Option) (map[string]*geotable.Table, map[Relation]*geotable.Table, error) {
	if g.kind != Heterogeneous {
		return nil, nil, fmt.Errorf("%w: graph is homogeneous", ErrWrongKind)
	}
	o := gatherOptions(opts...)
	d := Describe(g)

	nodeTypes := o.nodeTypeFilter
	if nodeTypes == nil {
		nodeTypes = d.NodeTypes
	}
	edgeTypes := o.edgeTypeFilter
	if edgeTypes == nil {
		edgeTypes = d.EdgeTypes
	}

	nodes := make(map[string]*geotable.Table, len(nodeTypes))
	for _, nt := range nodeTypes {
		if _, ok := g.nodes[nt]; !ok {
			return nil, nil, fmt.Errorf("%w: node type %q", ErrUnknownType, nt)
		}
		t, err := reconstructNodeTable(g, d, nt)
		if err != nil {
			return nil, nil, err
		}
		nodes[nt] = t
	}

	edges := make(map[Relation]*geotable.Table, len(edgeTypes))
	for _, rel := range edgeTypes {
		if _, ok := g.edges[rel]; !ok {
			return nil, nil, fmt.Errorf("%w: relation %v", ErrUnknownType, rel)
		}
		t, err := reconstructEdgeTable(g, d, rel)
		if err != nil {
			return nil, nil, err
		}
		edges[rel] = t
	}
	return nodes, edges, nil
}

// reconstructNodeTable rebuilds one entity table from a node set, driven by
// the descriptor. Row count is recovered from features, then positions, then
// the stored identifier count. Identifier placement follows the recorded
// source: a named column is re-created as a column; row identity becomes the
// table index. Stored index names are re-applied either way. An all-empty
// node set degrades to a generated ordinal "node_id" column so the table is
// present but empty of data.
func reconstructNodeTable(g *Graph, d Descriptor, nodeType string) (*geotable.Table, error) {
	ns := g.nodes[nodeType]
	info := d.Nodes[nodeType]

	n := ns.Features.Rows()
	if n == 0 && info.HasPositions {
		n = ns.Positions.Rows()
	}
	if n == 0 {
		n = info.Count
	}

	var colNames []string
	data := make(map[string][]geotable.Value)

	if info.HasMapping && ns.IDSource != IDSourceIndex {
		colNames = append(colNames, ns.IDSource)
		data[ns.IDSource] = clipValues(ns.OriginalIDs, n)
	}
	if info.HasFeatures {
		colNames = appendMatrixColumns(colNames, data, ns.Features, ns.FeatureCols)
	}
	if info.HasLabels {
		colNames = appendMatrixColumns(colNames, data, ns.Labels, ns.LabelCols)
	}
	if len(colNames) == 0 && !info.HasPositions && !info.HasMapping && n > 0 {
		// Nothing survived conversion: present-but-empty entity table.
		ordinals := make([]geotable.Value, n)
		for i := range ordinals {
			ordinals[i] = i
		}
		colNames = append(colNames, "node_id")
		data["node_id"] = ordinals
	}

	tableOpts := make([]geotable.TableOption, 0, 3)

	if info.HasMapping && ns.IDSource == IDSourceIndex {
		ix, err := geotable.NewIndex(ns.IndexNames, clipValues(ns.OriginalIDs, n))
		if err != nil {
			return nil, err
		}
		tableOpts = append(tableOpts, geotable.WithIndex(ix))
	} else if info.HasIndexName {
		// Identifiers came from a named column, but the source table also
		// carried a named index. Its values were not stored, so the names
		// are re-applied over ordinal levels.
		ordinals := make([]geotable.Value, n)
		for i := range ordinals {
			ordinals[i] = i
		}
		levels := make([][]geotable.Value, len(ns.IndexNames))
		for i := range levels {
			levels[i] = ordinals
		}
		ix, err := geotable.NewIndex(ns.IndexNames, levels...)
		if err != nil {
			return nil, err
		}
		tableOpts = append(tableOpts, geotable.WithIndex(ix))
	}
	if info.HasPositions {
		geoms := make([]orb.Geometry, n)
		for i := 0; i < n; i++ {
			geoms[i] = orb.Point{ns.Positions.At(i, 0), ns.Positions.At(i, 1)}
		}
		tableOpts = append(tableOpts, geotable.WithGeometry(geoms))
	}
	if d.HasCRS {
		tableOpts = append(tableOpts, geotable.WithCRS(d.CRS))
	}

	return geotable.New(colNames, data, tableOpts...)
}

// reconstructEdgeTable rebuilds one relation table from an edge set: feature
// columns by stored name, a straight-line geometry between each edge's
// endpoint positions (an index at or beyond the position matrix length
// leaves that row's geometry nil), and the original row index when stored.
func reconstructEdgeTable(g *Graph, d Descriptor, rel Relation) (*geotable.Table, error) {
	es := g.edges[rel]
	info := d.Edges[rel]

	var colNames []string
	data := make(map[string][]geotable.Value)
	if info.HasFeatures {
		colNames = appendMatrixColumns(colNames, data, es.Features, es.FeatureCols)
	}

	tableOpts := make([]geotable.TableOption, 0, 3)

	srcNodes := g.nodes[rel.Source]
	dstNodes := g.nodes[rel.Target]
	if info.HasConnectivity &&
		d.Nodes[rel.Source].HasPositions && d.Nodes[rel.Target].HasPositions {
		geoms := make([]orb.Geometry, es.Len())
		for i := 0; i < es.Len(); i++ {
			si, ti := es.Sources[i], es.Targets[i]
			if si >= srcNodes.Positions.Rows() || ti >= dstNodes.Positions.Rows() {
				continue // invalid edge index: geometry stays nil
			}
			geoms[i] = orb.LineString{
				{srcNodes.Positions.At(si, 0), srcNodes.Positions.At(si, 1)},
				{dstNodes.Positions.At(ti, 0), dstNodes.Positions.At(ti, 1)},
			}
		}
		tableOpts = append(tableOpts, geotable.WithGeometry(geoms))
	}

	if info.HasIndexValues {
		ix, err := geotable.NewIndex(es.IndexNames, es.IndexValues...)
		if err != nil {
			return nil, err
		}
		tableOpts = append(tableOpts, geotable.WithIndex(ix))
	}
	if d.HasCRS {
		tableOpts = append(tableOpts, geotable.WithCRS(d.CRS))
	}

	return geotable.New(colNames, data, tableOpts...)
}

// clipValues returns at most n leading values of vs.
func clipValues(vs []geotable.Value, n int) []geotable.Value {
	if len(vs) > n {
		vs = vs[:n]
	}
	return append([]geotable.Value(nil), vs...)
}

// appendMatrixColumns splits a matrix into named Value columns, trimming to
// the shorter of names and matrix width.
func appendMatrixColumns(colNames []string, data map[string][]geotable.Value, m *tensor.Matrix, names []string) []string {
	width := m.Cols()
	if len(names) < width {
		width = len(names)
	}
	for j := 0; j < width; j++ {
		col := m.Col(j)
		vals := make([]geotable.Value, len(col))
		for i, v := range col {
			vals[i] = v
		}
		colNames = append(colNames, names[j])
		data[names[j]] = vals
	}
	return colNames
}
