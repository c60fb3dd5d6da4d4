package graphconv

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/tensor"
)

// featureMatrix extracts the requested columns into a rows×k matrix, where k
// counts the requested names that actually exist in the table, in requested
// order. Absent names are silently skipped; no usable names yields a
// zero-width matrix, never nil. Non-numeric cells contribute 0.
// Complexity: O(rows × k).
func featureMatrix(t *geotable.Table, requested []string, device tensor.Device, dtype tensor.DType) (*tensor.Matrix, []string) {
	var valid []string
	for _, name := range requested {
		if t.HasColumn(name) {
			valid = append(valid, name)
		}
	}

	m := tensor.Zeros(t.Len(), len(valid), device, dtype)
	for j, name := range valid {
		col, _ := t.Column(name)
		for i, v := range col {
			f, _ := geotable.AsFloat(v)
			m.Set(i, j, f)
		}
	}
	return m, valid
}

// positionMatrix extracts one [x, y] row per record from the table's
// geometry column: points contribute their coordinates directly, any other
// geometry its planar centroid, nil geometries (0, 0). Returns nil when the
// table carries no geometry column, as distinct from an all-zero matrix.
// Complexity: O(rows) plus centroid cost per non-point geometry.
func positionMatrix(t *geotable.Table, device tensor.Device, dtype tensor.DType) *tensor.Matrix {
	if !t.HasGeometry() {
		return nil
	}

	geoms := t.Geometry()
	m := tensor.Zeros(len(geoms), 2, device, dtype)
	for i, g := range geoms {
		if g == nil {
			continue
		}
		pt := anchorPoint(g)
		m.Set(i, 0, pt[0])
		m.Set(i, 1, pt[1])
	}
	return m
}

// anchorPoint reduces a geometry to a single positioning coordinate.
func anchorPoint(g orb.Geometry) orb.Point {
	if pt, ok := g.(orb.Point); ok {
		return pt
	}
	centroid, _ := planar.CentroidArea(g)
	return centroid
}
