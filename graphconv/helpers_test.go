package graphconv_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/geograph-dev/geograph/geotable"
)

// mustTable builds a table or fails the test.
func mustTable(t *testing.T, cols []string, data map[string][]geotable.Value, opts ...geotable.TableOption) *geotable.Table {
	t.Helper()
	tbl, err := geotable.New(cols, data, opts...)
	require.NoError(t, err)
	return tbl
}

// mustIndex builds an index or fails the test.
func mustIndex(t *testing.T, names []string, levels ...[]geotable.Value) *geotable.Index {
	t.Helper()
	ix, err := geotable.NewIndex(names, levels...)
	require.NoError(t, err)
	return ix
}

// stationTable is a three-entity table with point geometry and a CRS tag,
// identified by the "station" column.
func stationTable(t *testing.T) *geotable.Table {
	t.Helper()
	return mustTable(t,
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
}

// linkTable references stationTable entities through from_id/to_id columns.
func linkTable(t *testing.T) *geotable.Table {
	t.Helper()
	return mustTable(t,
		[]string{"from_id", "to_id", "length"},
		map[string][]geotable.Value{
			"from_id": {"a", "b", "c"},
			"to_id":   {"b", "c", "a"},
			"length":  {1.0, 2.0, 3.0},
		},
	)
}
