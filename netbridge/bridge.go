package netbridge

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/graphconv"
)

// ToNetwork maps a Graph (of either kind) onto the attributed network model.
// Node identifiers are per-type offsets into one shared integer space; node
// and edge attributes carry original column names where recorded, generic
// positional names otherwise. Complexity: O(nodes × attrs + edges × attrs).
func ToNetwork(g *graphconv.Graph) *Network {
	d := graphconv.Describe(g)

	nw := &Network{
		und:       simple.NewUndirectedGraph(),
		hetero:    d.Hetero,
		nodeTypes: d.NodeTypes,
		offsets:   make(map[string]int64, len(d.NodeTypes)),
		crs:       d.CRS,
	}

	var offset int64
	for _, nt := range d.NodeTypes {
		nw.offsets[nt] = offset
		ns := g.Nodes(nt)
		info := d.Nodes[nt]

		for i := 0; i < ns.Len(); i++ {
			node := &Node{
				id:    offset + int64(i),
				Type:  nt,
				Attrs: make(map[string]float64),
			}
			if info.HasFeatures {
				attachRow(node.Attrs, ns.Features.Row(i), ns.FeatureCols, "feat")
			}
			if info.HasLabels {
				attachRow(node.Attrs, ns.Labels.Row(i), ns.LabelCols, "label")
			}
			if info.HasPositions {
				node.Pos = orb.Point{ns.Positions.At(i, 0), ns.Positions.At(i, 1)}
				node.HasPos = true
			}
			nw.nodes = append(nw.nodes, node)
			nw.und.AddNode(node)
		}
		offset += int64(ns.Len())
	}

	for _, rel := range d.EdgeTypes {
		es := g.Edges(rel)
		srcOff, dstOff := nw.offsets[rel.Source], nw.offsets[rel.Target]
		hasFeatures := d.Edges[rel].HasFeatures

		for k := 0; k < es.Len(); k++ {
			u := nw.nodes[srcOff+int64(es.Sources[k])]
			v := nw.nodes[dstOff+int64(es.Targets[k])]
			edge := &Edge{from: u, to: v, Type: rel.Name, Attrs: make(map[string]float64)}
			if hasFeatures {
				attachRow(edge.Attrs, es.Features.Row(k), es.FeatureCols, "edge_feat")
			}
			nw.edges = append(nw.edges, edge)
			if u.ID() != v.ID() {
				nw.und.SetEdge(edge)
			}
		}
	}

	return nw
}

// FromNetwork converts the network's attribute and coordinate export into a
// homogeneous Graph via the standard table round trip. Node attributes become
// entity columns (designate features with graphconv.WithFeatureColumns and
// friends); edge attributes become relation columns alongside the generated
// "source"/"target" endpoint columns. Returns ErrEmptyNetwork when the
// network holds no nodes.
func FromNetwork(nw *Network, opts ...graphconv.Option) (*graphconv.Graph, error) {
	if len(nw.nodes) == 0 {
		return nil, ErrEmptyNetwork
	}

	nodes, err := nodeTable(nw)
	if err != nil {
		return nil, err
	}
	edges, err := edgeTable(nw)
	if err != nil {
		return nil, err
	}

	opts = append(append([]graphconv.Option(nil), opts...),
		graphconv.WithSourceColumn("source"),
		graphconv.WithTargetColumn("target"),
	)
	return graphconv.ToGraph(nodes, edges, opts...)
}

// nodeTable exports all node attributes and coordinates into an entity table
// indexed by shared-space identifier.
func nodeTable(nw *Network) (*geotable.Table, error) {
	cols := attrColumns(len(nw.nodes), func(i int) map[string]float64 { return nw.nodes[i].Attrs })

	ids := make([]geotable.Value, len(nw.nodes))
	anyPos := false
	for i, n := range nw.nodes {
		ids[i] = int(n.ID())
		anyPos = anyPos || n.HasPos
	}
	ix, err := geotable.NewIndex(nil, ids)
	if err != nil {
		return nil, err
	}

	tableOpts := []geotable.TableOption{geotable.WithIndex(ix)}
	if anyPos {
		geoms := make([]orb.Geometry, len(nw.nodes))
		for i, n := range nw.nodes {
			if n.HasPos {
				geoms[i] = n.Pos
			}
		}
		tableOpts = append(tableOpts, geotable.WithGeometry(geoms))
	}
	if nw.crs != "" {
		tableOpts = append(tableOpts, geotable.WithCRS(nw.crs))
	}

	return geotable.New(cols.names, cols.data, tableOpts...)
}

// edgeTable exports all edges (self-loops included) into a relation table
// with explicit "source"/"target" endpoint columns.
func edgeTable(nw *Network) (*geotable.Table, error) {
	cols := attrColumns(len(nw.edges), func(i int) map[string]float64 { return nw.edges[i].Attrs })

	src := make([]geotable.Value, len(nw.edges))
	dst := make([]geotable.Value, len(nw.edges))
	for i, e := range nw.edges {
		src[i] = int(e.from.ID())
		dst[i] = int(e.to.ID())
	}
	names := append([]string{"source", "target"}, cols.names...)
	cols.data["source"] = src
	cols.data["target"] = dst

	return geotable.New(names, cols.data)
}

type columnExport struct {
	names []string
	data  map[string][]geotable.Value
}

// attrColumns gathers the sorted union of attribute names over n records and
// materializes one column per name; records lacking an attribute contribute
// nil cells.
func attrColumns(n int, attrs func(int) map[string]float64) columnExport {
	nameSet := make(map[string]struct{})
	for i := 0; i < n; i++ {
		for k := range attrs(i) {
			nameSet[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(nameSet))
	for k := range nameSet {
		names = append(names, k)
	}
	sort.Strings(names)

	data := make(map[string][]geotable.Value, len(names))
	for _, name := range names {
		col := make([]geotable.Value, n)
		for i := 0; i < n; i++ {
			if v, ok := attrs(i)[name]; ok {
				col[i] = v
			}
		}
		data[name] = col
	}
	return columnExport{names: names, data: data}
}

// attachRow writes one matrix row into an attribute map, naming values by
// column where names are recorded and by generic positional names otherwise.
func attachRow(attrs map[string]float64, row []float64, names []string, prefix string) {
	for j, v := range row {
		if j < len(names) {
			attrs[names[j]] = v
		} else {
			attrs[fmt.Sprintf("%s_%d", prefix, j)] = v
		}
	}
}
