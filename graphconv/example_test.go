// File: graphconv/example_test.go
package graphconv_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/graphconv"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ToGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleToGraph demonstrates converting one entity table plus one relation
// table into a homogeneous graph.
// Scenario:
//
//   - Three stations a, b, c with a capacity feature and point geometry
//   - Links reference stations through from_id/to_id columns (detected by
//     keyword, no explicit configuration needed)
//   - The identifier column "station" becomes the node mapping
//
// Complexity: O(nodes × features + edges)
func ExampleToGraph() {
	stations, _ := geotable.New(
		[]string{"station", "capacity"},
		map[string][]geotable.Value{
			"station":  {"a", "b", "c"},
			"capacity": {10.0, 20.0, 30.0},
		},
		geotable.WithGeometry([]orb.Geometry{
			orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{0, 1},
		}),
		geotable.WithCRS("EPSG:4326"),
	)
	links, _ := geotable.New(
		[]string{"from_id", "to_id", "length"},
		map[string][]geotable.Value{
			"from_id": {"a", "b", "c"},
			"to_id":   {"b", "c", "a"},
			"length":  {1.0, 2.0, 3.0},
		},
	)

	g, _ := graphconv.ToGraph(stations, links,
		graphconv.WithIDColumn("station"),
		graphconv.WithFeatureColumns("capacity"),
		graphconv.WithEdgeFeatureColumns("length"),
	)

	ns := g.Nodes(graphconv.DefaultNodeType)
	es := g.Edges(graphconv.DefaultRelation)
	fmt.Println("nodes:", ns.Len())
	fmt.Println("features:", ns.FeatureCols)
	fmt.Println("edges:", es.Len())
	fmt.Println("sources:", es.Sources)
	fmt.Println("targets:", es.Targets)
	fmt.Println("crs:", g.CRS())

	// Output:
	// nodes: 3
	// features: [capacity]
	// edges: 3
	// sources: [0 1 2]
	// targets: [1 2 0]
	// crs: EPSG:4326
}

////////////////////////////////////////////////////////////////////////////////
// Example: FromGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleFromGraph demonstrates the inverse trip: the graph built above is
// turned back into tables with the original identifiers, column names and
// geometry restored.
//
// Complexity: O(nodes × features + edges)
func ExampleFromGraph() {
	stations, _ := geotable.New(
		[]string{"station"},
		map[string][]geotable.Value{"station": {"a", "b"}},
		geotable.WithGeometry([]orb.Geometry{orb.Point{0, 0}, orb.Point{3, 4}}),
	)
	links, _ := geotable.New(
		[]string{"from_id", "to_id"},
		map[string][]geotable.Value{"from_id": {"a"}, "to_id": {"b"}},
	)
	g, _ := graphconv.ToGraph(stations, links, graphconv.WithIDColumn("station"))

	nodes, edges, _ := graphconv.FromGraph(g)

	ids, _ := nodes.Column("station")
	fmt.Println("ids:", ids)
	fmt.Println("edge geometry:", edges.Geometry()[0])

	// Output:
	// ids: [a b]
	// edge geometry: [[0 0] [3 4]]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ToHeteroGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleToHeteroGraph demonstrates a two-type conversion where each entity
// type keeps its own identifier space.
// Scenario:
//
//   - Buildings and streets are separate entity types
//   - One relation type (building, faces, street) connects them
//
// Complexity: O(Σ nodes × features + Σ edges)
func ExampleToHeteroGraph() {
	buildings, _ := geotable.New(
		[]string{"bid"},
		map[string][]geotable.Value{"bid": {"b1", "b2"}},
	)
	streets, _ := geotable.New(
		[]string{"sid"},
		map[string][]geotable.Value{"sid": {"s1", "s2", "s3"}},
	)
	faces := graphconv.Relation{Source: "building", Name: "faces", Target: "street"}
	rels, _ := geotable.New(
		[]string{"from_id", "to_id"},
		map[string][]geotable.Value{
			"from_id": {"b2", "b1"},
			"to_id":   {"s3", "s1"},
		},
	)

	g, _ := graphconv.ToHeteroGraph(
		map[string]*geotable.Table{"building": buildings, "street": streets},
		map[graphconv.Relation]*geotable.Table{faces: rels},
		graphconv.WithIDColumnFor("building", "bid"),
		graphconv.WithIDColumnFor("street", "sid"),
	)

	fmt.Println("types:", g.NodeTypes())
	es := g.Edges(faces)
	fmt.Println("sources:", es.Sources)
	fmt.Println("targets:", es.Targets)

	// Output:
	// types: [building street]
	// sources: [1 0]
	// targets: [2 0]
}
