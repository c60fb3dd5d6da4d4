package graphconv

import (
	"strings"

	"github.com/geograph-dev/geograph/geotable"
)

// Endpoint detection signal values: the relation table's two index levels
// carry the endpoint identifiers instead of named columns.
const (
	SourceFromIndex = "source_from_index"
	TargetFromIndex = "target_from_index"
)

// Base keyword sets for endpoint column detection. Caller hints and the
// identifier column name extend them per call.
var (
	baseSourceKeywords = []string{"from", "source", "start", "u"}
	baseTargetKeywords = []string{"to", "target", "end", "v"}
)

// endpointResolution names the two columns (or index levels) that encode the
// relation table's endpoints.
type endpointResolution struct {
	sourceCol, targetCol string
	fromIndex            bool
}

// endpointStrategy tries one detection policy; ok=false means "no match",
// letting the next strategy run. Strategies are pure and individually
// testable.
type endpointStrategy func(t *geotable.Table, o *options, idCol string) (endpointResolution, bool)

// endpointStrategies is the detection chain, tried in priority order.
var endpointStrategies = []endpointStrategy{
	indexLevelStrategy,
	keywordStrategy,
	positionalStrategy,
}

// resolveEndpoints runs the detection chain. ok=false means the relation
// table must be treated as having no edges; detection failure is soft,
// never an error.
func resolveEndpoints(t *geotable.Table, o *options, idCol string) (endpointResolution, bool) {
	for _, strategy := range endpointStrategies {
		if res, ok := strategy(t, o, idCol); ok {
			return res, true
		}
	}
	return endpointResolution{}, false
}

// indexLevelStrategy: a two-level row index encodes (source, target) as
// levels 0 and 1. Applies regardless of attribute columns.
func indexLevelStrategy(t *geotable.Table, _ *options, _ string) (endpointResolution, bool) {
	if ix := t.Index(); ix != nil && ix.Levels() == 2 {
		return endpointResolution{
			sourceCol: SourceFromIndex,
			targetCol: TargetFromIndex,
			fromIndex: true,
		}, true
	}
	return endpointResolution{}, false
}

// keywordStrategy: pick the first column whose lowercased name contains any
// source keyword, and likewise for targets. Keyword sets are the base sets
// extended with caller hints and the identifier column name.
func keywordStrategy(t *geotable.Table, o *options, idCol string) (endpointResolution, bool) {
	cols := t.Columns()
	if t.Len() == 0 || len(cols) < 2 {
		return endpointResolution{}, false
	}

	srcKeywords := keywordSet(baseSourceKeywords, o.sourceHints, idCol)
	dstKeywords := keywordSet(baseTargetKeywords, o.targetHints, idCol)

	src := firstMatch(cols, srcKeywords)
	dst := firstMatch(cols, dstKeywords)
	if src == "" || dst == "" {
		return endpointResolution{}, false
	}
	return endpointResolution{sourceCol: src, targetCol: dst}, true
}

// positionalStrategy: fall back to column position, skipping a leading
// geometry column.
func positionalStrategy(t *geotable.Table, _ *options, _ string) (endpointResolution, bool) {
	cols := t.Columns()
	if t.Len() == 0 || len(cols) < 2 {
		return endpointResolution{}, false
	}
	switch {
	case cols[0] != "geometry" && cols[1] != "geometry":
		return endpointResolution{sourceCol: cols[0], targetCol: cols[1]}, true
	case cols[0] == "geometry" && len(cols) >= 3:
		return endpointResolution{sourceCol: cols[1], targetCol: cols[2]}, true
	default:
		return endpointResolution{}, false
	}
}

func keywordSet(base, hints []string, idCol string) []string {
	out := append([]string(nil), base...)
	for _, h := range hints {
		out = append(out, strings.ToLower(h))
	}
	if idCol != "" {
		out = append(out, strings.ToLower(idCol))
	}
	return out
}

func firstMatch(cols, keywords []string) string {
	for _, col := range cols {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return col
			}
		}
	}
	return ""
}
