package graphconv

import (
	"fmt"

	"github.com/geograph-dev/geograph/geotable"
)

// idMapping is the bijection between one entity type's original identifiers
// and its dense integer index space [0, n). Index i is assigned to the i-th
// row in table order, so the mapping is order-preserving by construction.
type idMapping struct {
	byValue map[geotable.Value]int
	ordered []geotable.Value
	source  string // IDSourceIndex or the identifier column name
}

// newIDMapping builds the identifier mapping for an entity table. idCol names
// the identifier column; "" selects row identity (index level 0 when an index
// is attached, ordinal integers otherwise). A named but absent column fails
// with ErrInvalidColumn. Complexity: O(rows).
func newIDMapping(t *geotable.Table, idCol string) (*idMapping, error) {
	m := &idMapping{source: IDSourceIndex}

	if idCol == "" {
		m.ordered = t.RowIDs()
	} else {
		col, err := t.Column(idCol)
		if err != nil {
			return nil, fmt.Errorf("%w: id column %q", ErrInvalidColumn, idCol)
		}
		m.ordered = col
		m.source = idCol
	}

	m.byValue = make(map[geotable.Value]int, len(m.ordered))
	for i, id := range m.ordered {
		m.byValue[id] = i
	}
	return m, nil
}

// lookup resolves one identifier, coercing v to the mapping's key type when
// direct lookup fails (a relation table may carry "7" where the entity table
// carried 7, or vice versa).
func (m *idMapping) lookup(v geotable.Value) (int, bool) {
	if i, ok := m.byValue[v]; ok {
		return i, true
	}
	if c, ok := coerceTo(v, m.sampleKey()); ok {
		i, ok := m.byValue[c]
		return i, ok
	}
	return 0, false
}

func (m *idMapping) sampleKey() geotable.Value {
	if len(m.ordered) == 0 {
		return nil
	}
	return m.ordered[0]
}

// coerceTo casts v to the dynamic type of sample. Supported key kinds are
// string, int, int64 and float64; anything else reports no match.
func coerceTo(v, sample geotable.Value) (geotable.Value, bool) {
	if v == nil || sample == nil {
		return nil, false
	}
	switch sample.(type) {
	case string:
		return fmt.Sprint(v), true
	case int:
		if f, ok := geotable.AsFloat(v); ok && f == float64(int(f)) {
			return int(f), true
		}
		var i int
		if _, err := fmt.Sscanf(fmt.Sprint(v), "%d", &i); err == nil {
			return i, true
		}
	case int64:
		if f, ok := geotable.AsFloat(v); ok && f == float64(int64(f)) {
			return int64(f), true
		}
		var i int64
		if _, err := fmt.Sscanf(fmt.Sprint(v), "%d", &i); err == nil {
			return i, true
		}
	case float64:
		if f, ok := geotable.AsFloat(v); ok {
			return f, true
		}
	}
	return nil, false
}
