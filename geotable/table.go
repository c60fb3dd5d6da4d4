package geotable

import (
	"fmt"

	"github.com/paulmach/orb"
)

// New builds an immutable Table from ordered column names and a column store.
// Every name in columns must map to a slice in data; all slices must share one
// length, which becomes the row count. Row count for a table with no columns
// is taken from the index or geometry supplied via options (zero otherwise).
// Complexity: O(rows × columns).
func New(columns []string, data map[string][]Value, opts ...TableOption) (*Table, error) {
	t := &Table{
		colNames: append([]string(nil), columns...),
		cols:     make(map[string][]Value, len(columns)),
	}

	rows := -1
	for _, name := range columns {
		col, ok := data[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no data", ErrUnknownColumn, name)
		}
		if rows >= 0 && len(col) != rows {
			return nil, ErrRaggedColumns
		}
		rows = len(col)
		t.cols[name] = append([]Value(nil), col...)
	}
	for name := range data {
		if _, ok := t.cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q not declared in column order", ErrUnknownColumn, name)
		}
	}
	if rows < 0 {
		rows = 0
	}
	t.rows = rows

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	// A column-less table takes its row count from index or geometry.
	if len(t.colNames) == 0 {
		switch {
		case t.index != nil:
			t.rows = t.index.Len()
		case t.geometry != nil:
			t.rows = len(t.geometry)
		}
	}
	if t.index != nil && t.index.Len() != t.rows {
		return nil, ErrLengthMismatch
	}
	if t.geometry != nil && len(t.geometry) != t.rows {
		return nil, ErrLengthMismatch
	}

	return t, nil
}

// Len returns the number of rows. Complexity: O(1).
func (t *Table) Len() int { return t.rows }

// Columns returns the ordered column names as a copy.
func (t *Table) Columns() []string { return append([]string(nil), t.colNames...) }

// HasColumn reports whether the named attribute column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the values of the named column.
// Returns ErrUnknownColumn if the column does not exist.
func (t *Table) Column(name string) ([]Value, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return append([]Value(nil), col...), nil
}

// Index returns the row index, or nil when rows are identified positionally.
func (t *Table) Index() *Index { return t.index }

// HasGeometry reports whether a geometry column is attached.
func (t *Table) HasGeometry() bool { return t.geometry != nil }

// Geometry returns the geometry column (nil when absent). Entries may be nil.
func (t *Table) Geometry() []orb.Geometry {
	if t.geometry == nil {
		return nil
	}
	return append([]orb.Geometry(nil), t.geometry...)
}

// CRS returns the coordinate-reference tag, or "" when untagged.
func (t *Table) CRS() string { return t.crs }

// RowIDs returns the identifiers carried by the row index: level-0 index
// values when an index is attached, ordinal integers 0..n-1 otherwise.
func (t *Table) RowIDs() []Value {
	if t.index != nil {
		return append([]Value(nil), t.index.levels[0]...)
	}
	ids := make([]Value, t.rows)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// AsFloat coerces a cell value to float64 for numeric extraction.
// Booleans map to 0/1; non-numeric values report ok=false.
func AsFloat(v Value) (f float64, ok bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
