// Package graphconv: functional configuration for conversion calls.
//
// Defaults mirror the documented constants; entry points resolve options via
// gatherOptions and never read flags from anywhere else. Per-type setters
// (the *For variants) configure heterogeneous conversions; the plain setters
// configure homogeneous ones and apply to DefaultNodeType / DefaultRelation.
package graphconv

import (
	"go.uber.org/zap"

	"github.com/geograph-dev/geograph/tensor"
)

// DefaultLabelColumn is consulted when no label columns are designated: if an
// entity table carries a column with this name, it becomes the single label
// column.
const DefaultLabelColumn = "label"

// Option mutates conversion options. Apply order is last-writer-wins.
type Option func(*options)

type options struct {
	idCols          map[string]string   // node type → identifier column
	featureCols     map[string][]string // node type → feature columns
	labelCols       map[string][]string // node type → label columns
	edgeFeatureCols map[string][]string // relation name → feature columns

	sourceCol, targetCol     string // explicit endpoint columns (homogeneous)
	sourceHints, targetHints []string

	device tensor.Device
	dtype  tensor.DType
	logger *zap.Logger

	nodeTypeFilter []string   // FromHeteroGraph: restrict node types
	edgeTypeFilter []Relation // FromHeteroGraph: restrict edge types
}

// WithIDColumn names the identifier column of a homogeneous entity table.
// Default: row identity.
func WithIDColumn(col string) Option { return WithIDColumnFor(DefaultNodeType, col) }

// WithIDColumnFor names the identifier column of one entity type.
func WithIDColumnFor(nodeType, col string) Option {
	return func(o *options) { o.idCols[nodeType] = col }
}

// WithFeatureColumns designates feature columns of a homogeneous entity table.
func WithFeatureColumns(cols ...string) Option {
	return WithFeatureColumnsFor(DefaultNodeType, cols...)
}

// WithFeatureColumnsFor designates feature columns of one entity type.
func WithFeatureColumnsFor(nodeType string, cols ...string) Option {
	return func(o *options) { o.featureCols[nodeType] = append([]string(nil), cols...) }
}

// WithLabelColumns designates label columns of a homogeneous entity table.
func WithLabelColumns(cols ...string) Option {
	return WithLabelColumnsFor(DefaultNodeType, cols...)
}

// WithLabelColumnsFor designates label columns of one entity type.
func WithLabelColumnsFor(nodeType string, cols ...string) Option {
	return func(o *options) { o.labelCols[nodeType] = append([]string(nil), cols...) }
}

// WithEdgeFeatureColumns designates feature columns of a homogeneous relation
// table.
func WithEdgeFeatureColumns(cols ...string) Option {
	return WithEdgeFeatureColumnsFor(DefaultRelation.Name, cols...)
}

// WithEdgeFeatureColumnsFor designates feature columns of one relation type,
// keyed by its relation name.
func WithEdgeFeatureColumnsFor(relationName string, cols ...string) Option {
	return func(o *options) { o.edgeFeatureCols[relationName] = append([]string(nil), cols...) }
}

// WithSourceColumn names the relation table's source endpoint column,
// bypassing detection. The column must exist (ErrInvalidColumn otherwise).
func WithSourceColumn(col string) Option {
	return func(o *options) { o.sourceCol = col }
}

// WithTargetColumn names the relation table's target endpoint column,
// bypassing detection.
func WithTargetColumn(col string) Option {
	return func(o *options) { o.targetCol = col }
}

// WithSourceHints adds keywords to the source-column detection set.
func WithSourceHints(hints ...string) Option {
	return func(o *options) { o.sourceHints = append(o.sourceHints, hints...) }
}

// WithTargetHints adds keywords to the target-column detection set.
func WithTargetHints(hints ...string) Option {
	return func(o *options) { o.targetHints = append(o.targetHints, hints...) }
}

// WithDevice sets the placement target for all matrices of the call.
// Default: DeviceAuto. Validated eagerly before any data processing.
func WithDevice(d tensor.Device) Option {
	return func(o *options) { o.device = d }
}

// WithDType sets the numeric width for all matrices of the call.
// Default: Float64.
func WithDType(dt tensor.DType) Option {
	return func(o *options) { o.dtype = dt }
}

// WithLogger installs a diagnostics logger for soft failures (dropped edges,
// undetectable endpoint columns). Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNodeTypes restricts FromHeteroGraph to the named node types.
// Default: all types.
func WithNodeTypes(types ...string) Option {
	return func(o *options) { o.nodeTypeFilter = append([]string(nil), types...) }
}

// WithEdgeTypes restricts FromHeteroGraph to the named edge types.
// Default: all types.
func WithEdgeTypes(rels ...Relation) Option {
	return func(o *options) { o.edgeTypeFilter = append([]Relation(nil), rels...) }
}

// gatherOptions resolves option setters against defaults. Canonical internal
// entry; all public functions consume ...Option and call this.
func gatherOptions(opts ...Option) options {
	o := options{
		idCols:          make(map[string]string),
		featureCols:     make(map[string][]string),
		labelCols:       make(map[string][]string),
		edgeFeatureCols: make(map[string][]string),
		device:          tensor.DeviceAuto,
		dtype:           tensor.Float64,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
