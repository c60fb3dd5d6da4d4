package geotable

// NewIndex builds a row index from level value slices. names supplies one
// name per level; a nil or short names slice leaves the remaining levels
// unnamed (""). At least one level is required; all levels must share one
// length.
// Complexity: O(levels × rows).
func NewIndex(names []string, levels ...[]Value) (*Index, error) {
	if len(levels) == 0 {
		return nil, ErrBadIndex
	}
	n := len(levels[0])
	ix := &Index{
		names:  make([]string, len(levels)),
		levels: make([][]Value, len(levels)),
	}
	for i, lv := range levels {
		if len(lv) != n {
			return nil, ErrBadIndex
		}
		ix.levels[i] = append([]Value(nil), lv...)
		if i < len(names) {
			ix.names[i] = names[i]
		}
	}
	return ix, nil
}

// Levels returns the number of index levels.
func (ix *Index) Levels() int { return len(ix.levels) }

// Len returns the number of rows the index covers.
func (ix *Index) Len() int { return len(ix.levels[0]) }

// Names returns the per-level names as a copy. Unnamed levels are "".
func (ix *Index) Names() []string { return append([]string(nil), ix.names...) }

// Level returns the values of level i.
func (ix *Index) Level(i int) []Value {
	return append([]Value(nil), ix.levels[i]...)
}
