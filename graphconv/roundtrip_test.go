package graphconv_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/graphconv"
)

func TestRoundTrip_Homogeneous(t *testing.T) {
	g, err := graphconv.ToGraph(stationTable(t), linkTable(t),
		graphconv.WithIDColumn("station"),
		graphconv.WithFeatureColumns("capacity"),
		graphconv.WithEdgeFeatureColumns("length"),
	)
	require.NoError(t, err)

	nodes, edges, err := graphconv.FromGraph(g)
	require.NoError(t, err)

	// Identifiers come back as a column, in original order.
	ids, err := nodes.Column("station")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{"a", "b", "c"}, ids)

	caps, err := nodes.Column("capacity")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{10.0, 20.0, 30.0}, caps)

	require.True(t, nodes.HasGeometry())
	require.Equal(t, orb.Point{1, 0}, nodes.Geometry()[1])
	require.Equal(t, "EPSG:4326", nodes.CRS())

	// Edge features return under their original names; geometry is a
	// straight line between endpoint positions.
	require.Equal(t, 3, edges.Len())
	lengths, err := edges.Column("length")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{1.0, 2.0, 3.0}, lengths)
	require.Equal(t,
		orb.LineString{{0, 0}, {1, 0}},
		edges.Geometry()[0],
	)
}

func TestRoundTrip_IndexIdentifiers(t *testing.T) {
	ix := mustIndex(t, []string{"osmid"}, []geotable.Value{101, 102, 103})
	nodes := mustTable(t,
		[]string{"capacity"},
		map[string][]geotable.Value{"capacity": {1.0, 2.0, 3.0}},
		geotable.WithIndex(ix),
	)

	g, err := graphconv.ToGraph(nodes, nil, graphconv.WithFeatureColumns("capacity"))
	require.NoError(t, err)

	ns := g.Nodes(graphconv.DefaultNodeType)
	require.Equal(t, graphconv.IDSourceIndex, ns.IDSource)

	back, edges, err := graphconv.FromGraph(g)
	require.NoError(t, err)
	require.Nil(t, edges)

	// Row identity restores as a named index, not a column.
	require.False(t, back.HasColumn("osmid"))
	require.NotNil(t, back.Index())
	require.Equal(t, []string{"osmid"}, back.Index().Names())
	require.Equal(t, []geotable.Value{101, 102, 103}, back.Index().Level(0))
}

func TestRoundTrip_IndexNameWithColumnIdentifiers(t *testing.T) {
	// Identifiers come from a named column while the source table also
	// carries a named index; the index name must survive reconstruction
	// even though its values are not part of the mapping.
	ix := mustIndex(t, []string{"osmid"}, []geotable.Value{901, 902})
	nodes := mustTable(t,
		[]string{"station"},
		map[string][]geotable.Value{"station": {"a", "b"}},
		geotable.WithIndex(ix),
	)

	g, err := graphconv.ToGraph(nodes, nil, graphconv.WithIDColumn("station"))
	require.NoError(t, err)

	back, _, err := graphconv.FromGraph(g)
	require.NoError(t, err)

	ids, err := back.Column("station")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{"a", "b"}, ids)

	require.NotNil(t, back.Index())
	require.Equal(t, []string{"osmid"}, back.Index().Names())
	// The original index values were not stored; levels are ordinal.
	require.Equal(t, []geotable.Value{0, 1}, back.Index().Level(0))
}

func TestRoundTrip_OrdinalIdentity(t *testing.T) {
	// Three rows with nothing worth tensorizing beyond row identity.
	nodes := mustTable(t, nil, nil,
		geotable.WithGeometry([]orb.Geometry{nil, nil, nil}),
	)
	g, err := graphconv.ToGraph(nodes, nil)
	require.NoError(t, err)

	ns := g.Nodes(graphconv.DefaultNodeType)
	require.Equal(t, 0, ns.Features.Cols())
	require.Equal(t, 3, ns.Len())

	back, _, err := graphconv.FromGraph(g)
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())

	// Ordinal identity restores as an unnamed index; nil input geometries
	// were anchored at the origin and come back as points there.
	require.NotNil(t, back.Index())
	require.Equal(t, []geotable.Value{0, 1, 2}, back.Index().Level(0))
	require.Equal(t, orb.Point{0, 0}, back.Geometry()[2])
}

func TestRoundTrip_Heterogeneous(t *testing.T) {
	a := mustTable(t,
		[]string{"id", "score"},
		map[string][]geotable.Value{
			"id":    {"a0", "a1"},
			"score": {0.5, 1.5},
		},
		geotable.WithGeometry([]orb.Geometry{orb.Point{0, 0}, orb.Point{2, 2}}),
		geotable.WithCRS("EPSG:27700"),
	)
	b := mustTable(t,
		[]string{"id"},
		map[string][]geotable.Value{"id": {"b0", "b1", "b2"}},
		geotable.WithGeometry([]orb.Geometry{
			orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{1, 2},
		}),
		geotable.WithCRS("EPSG:27700"),
	)
	rel := graphconv.Relation{Source: "A", Name: "feeds", Target: "B"}
	links := mustTable(t,
		[]string{"from_id", "to_id", "weight"},
		map[string][]geotable.Value{
			"from_id": {"a0", "a1"},
			"to_id":   {"b2", "b0"},
			"weight":  {7.0, 8.0},
		},
	)

	g, err := graphconv.ToHeteroGraph(
		map[string]*geotable.Table{"A": a, "B": b},
		map[graphconv.Relation]*geotable.Table{rel: links},
		graphconv.WithIDColumnFor("A", "id"),
		graphconv.WithIDColumnFor("B", "id"),
		graphconv.WithFeatureColumnsFor("A", "score"),
		graphconv.WithEdgeFeatureColumnsFor("feeds", "weight"),
	)
	require.NoError(t, err)

	nodes, edges, err := graphconv.FromHeteroGraph(g)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Len(t, edges, 1)

	aBack := nodes["A"]
	ids, err := aBack.Column("id")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{"a0", "a1"}, ids)
	scores, err := aBack.Column("score")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{0.5, 1.5}, scores)
	require.Equal(t, "EPSG:27700", aBack.CRS())

	linksBack := edges[rel]
	weights, err := linksBack.Column("weight")
	require.NoError(t, err)
	require.Equal(t, []geotable.Value{7.0, 8.0}, weights)
	// Cross-type geometry: from A positions to B positions.
	require.Equal(t,
		orb.LineString{{0, 0}, {1, 2}},
		linksBack.Geometry()[0],
	)
}

func TestFromHeteroGraph_Filters(t *testing.T) {
	a := mustTable(t, []string{"id"}, map[string][]geotable.Value{"id": {"a0"}})
	b := mustTable(t, []string{"id"}, map[string][]geotable.Value{"id": {"b0"}})

	g, err := graphconv.ToHeteroGraph(
		map[string]*geotable.Table{"A": a, "B": b}, nil,
		graphconv.WithIDColumnFor("A", "id"),
		graphconv.WithIDColumnFor("B", "id"),
	)
	require.NoError(t, err)

	nodes, _, err := graphconv.FromHeteroGraph(g, graphconv.WithNodeTypes("B"))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Contains(t, nodes, "B")

	_, _, err = graphconv.FromHeteroGraph(g, graphconv.WithNodeTypes("C"))
	require.ErrorIs(t, err, graphconv.ErrUnknownType)
}

func TestFromGraph_KindMismatch(t *testing.T) {
	a := mustTable(t, []string{"id"}, map[string][]geotable.Value{"id": {"a0"}})
	hetero, err := graphconv.ToHeteroGraph(
		map[string]*geotable.Table{"A": a}, nil,
		graphconv.WithIDColumnFor("A", "id"),
	)
	require.NoError(t, err)

	_, _, err = graphconv.FromGraph(hetero)
	require.ErrorIs(t, err, graphconv.ErrWrongKind)

	homo, err := graphconv.ToGraph(stationTable(t), nil,
		graphconv.WithIDColumn("station"))
	require.NoError(t, err)

	_, _, err = graphconv.FromHeteroGraph(homo)
	require.ErrorIs(t, err, graphconv.ErrWrongKind)
}

func TestDescribe(t *testing.T) {
	g, err := graphconv.ToGraph(stationTable(t), linkTable(t),
		graphconv.WithIDColumn("station"),
		graphconv.WithFeatureColumns("capacity"),
	)
	require.NoError(t, err)

	d := graphconv.Describe(g)
	require.False(t, d.Hetero)
	require.True(t, d.HasCRS)
	require.Equal(t, "EPSG:4326", d.CRS)

	ni := d.Nodes[graphconv.DefaultNodeType]
	require.Equal(t, 3, ni.Count)
	require.True(t, ni.HasFeatures)
	require.True(t, ni.HasPositions)
	require.False(t, ni.HasLabels)
	require.True(t, ni.HasMapping)

	ei := d.Edges[graphconv.DefaultRelation]
	require.Equal(t, 3, ei.Count)
	require.True(t, ei.HasConnectivity)
	require.False(t, ei.HasFeatures)
}
