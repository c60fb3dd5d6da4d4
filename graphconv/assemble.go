package graphconv

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/geograph-dev/geograph/geotable"
	"github.com/geograph-dev/geograph/tensor"
)

// ToGraph converts one entity table and an optional relation table into a
// homogeneous Graph. Identifiers default to row identity (override with
// WithIDColumn); endpoint columns are detected unless WithSourceColumn /
// WithTargetColumn name them. Edges whose endpoints do not resolve are
// dropped silently. The call either returns a fully built Graph or an error;
// no partial object escapes.
// Complexity: O(nodes × features + edges).
func ToGraph(nodes, edges *geotable.Table, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)

	device, err := o.device.Resolve()
	if err != nil {
		return nil, err
	}
	if err := o.dtype.Validate(); err != nil {
		return nil, err
	}
	if nodes == nil {
		return nil, ErrNoNodes
	}

	g := &Graph{
		kind:   Homogeneous,
		nodes:  make(map[string]*NodeSet, 1),
		edges:  make(map[Relation]*EdgeSet, 1),
		device: device,
		dtype:  o.dtype,
	}

	ns, mapping, err := buildNodeSet(DefaultNodeType, nodes, &o, device)
	if err != nil {
		return nil, err
	}
	g.nodes[DefaultNodeType] = ns
	g.nodeTypes = []string{DefaultNodeType}
	g.crs = nodes.CRS()

	if edges != nil {
		es, err := buildEdgeSet(DefaultRelation, edges, mapping, mapping, &o, device)
		if err != nil {
			return nil, err
		}
		g.edges[DefaultRelation] = es
		g.edgeTypes = []Relation{DefaultRelation}
	}

	return g, nil
}

// ToHeteroGraph converts type-keyed entity tables and triple-keyed relation
// tables into a heterogeneous Graph. Relations whose declared source or
// target type is not among the entity types are skipped (logged, not
// errored). A coordinate-reference tag is aggregated only when every tagged
// entity type carries an identical one. Per-type processing is independent;
// types are handled in sorted order for determinism.
func ToHeteroGraph(nodes map[string]*geotable.Table, edges map[Relation]*geotable.Table, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)

	device, err := o.device.Resolve()
	if err != nil {
		return nil, err
	}
	if err := o.dtype.Validate(); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := &Graph{
		kind:   Heterogeneous,
		nodes:  make(map[string]*NodeSet, len(nodes)),
		edges:  make(map[Relation]*EdgeSet, len(edges)),
		device: device,
		dtype:  o.dtype,
	}

	nodeTypes := make([]string, 0, len(nodes))
	for nt := range nodes {
		nodeTypes = append(nodeTypes, nt)
	}
	sort.Strings(nodeTypes)

	mappings := make(map[string]*idMapping, len(nodes))
	for _, nt := range nodeTypes {
		ns, mapping, err := buildNodeSet(nt, nodes[nt], &o, device)
		if err != nil {
			return nil, fmt.Errorf("node type %q: %w", nt, err)
		}
		g.nodes[nt] = ns
		mappings[nt] = mapping
	}
	g.nodeTypes = nodeTypes
	g.crs = sharedCRS(nodes, nodeTypes)

	relations := make([]Relation, 0, len(edges))
	for rel := range edges {
		relations = append(relations, rel)
	}
	sort.Slice(relations, func(i, j int) bool {
		a, b := relations[i], relations[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Target < b.Target
	})

	for _, rel := range relations {
		srcMap, srcOK := mappings[rel.Source]
		dstMap, dstOK := mappings[rel.Target]
		if !srcOK || !dstOK {
			o.logger.Warn("skipping relation with undeclared endpoint type",
				zap.String("source", rel.Source),
				zap.String("relation", rel.Name),
				zap.String("target", rel.Target))
			continue
		}
		es, err := buildEdgeSet(rel, edges[rel], srcMap, dstMap, &o, device)
		if err != nil {
			return nil, fmt.Errorf("relation %q: %w", rel.Name, err)
		}
		g.edges[rel] = es
		g.edgeTypes = append(g.edgeTypes, rel)
	}

	return g, nil
}

// buildNodeSet tensorizes one entity table: identifier mapping, features,
// positions, labels, and reconstruction metadata, all in one pass. Labels
// fall back to the conventional DefaultLabelColumn when none are designated.
func buildNodeSet(nodeType string, t *geotable.Table, o *options, device tensor.Device) (*NodeSet, *idMapping, error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%w: type %q has no table", ErrNoNodes, nodeType)
	}

	mapping, err := newIDMapping(t, o.idCols[nodeType])
	if err != nil {
		return nil, nil, err
	}

	features, featureCols := featureMatrix(t, o.featureCols[nodeType], device, o.dtype)
	positions := positionMatrix(t, device, o.dtype)

	labelCols := o.labelCols[nodeType]
	if len(labelCols) == 0 && t.HasColumn(DefaultLabelColumn) {
		labelCols = []string{DefaultLabelColumn}
	}
	var labels *tensor.Matrix
	var keptLabelCols []string
	if len(labelCols) > 0 {
		labels, keptLabelCols = featureMatrix(t, labelCols, device, o.dtype)
	}

	var indexNames []string
	if ix := t.Index(); ix != nil {
		indexNames = ix.Names()
	}

	ns := &NodeSet{
		Type:        nodeType,
		Features:    features,
		Positions:   positions,
		Labels:      labels,
		FeatureCols: featureCols,
		LabelCols:   keptLabelCols,
		IDSource:    mapping.source,
		OriginalIDs: mapping.ordered,
		IndexNames:  indexNames,
		mapping:     mapping.byValue,
	}
	return ns, mapping, nil
}

// buildEdgeSet resolves endpoint columns, maps endpoint identifiers through
// the entity mappings, drops unresolvable rows, and assembles the surviving
// pairs in ascending original-row order together with their feature rows and
// original index values. A nil or endpoint-unresolvable table yields an empty
// edge set, never an error.
func buildEdgeSet(rel Relation, t *geotable.Table, srcMap, dstMap *idMapping, o *options, device tensor.Device) (*EdgeSet, error) {
	es := &EdgeSet{
		Relation: rel,
		Features: tensor.Zeros(0, 0, device, o.dtype),
	}
	if t == nil || t.Len() == 0 {
		return es, nil
	}

	srcVals, dstVals, err := endpointValues(t, srcMap, o)
	if err != nil {
		return nil, err
	}
	if srcVals == nil {
		o.logger.Warn("endpoint columns unresolved; relation built with zero edges",
			zap.String("relation", rel.Name))
		return es, nil
	}

	kept := make([]int, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		si, sOK := srcMap.lookup(srcVals[row])
		ti, tOK := dstMap.lookup(dstVals[row])
		if !sOK || !tOK {
			continue
		}
		es.Sources = append(es.Sources, si)
		es.Targets = append(es.Targets, ti)
		kept = append(kept, row)
	}
	if dropped := t.Len() - len(kept); dropped > 0 {
		o.logger.Debug("dropped edges with unresolved endpoints",
			zap.String("relation", rel.Name),
			zap.Int("dropped", dropped),
			zap.Int("kept", len(kept)))
	}

	full, featureCols := featureMatrix(t, o.edgeFeatureCols[rel.Name], device, o.dtype)
	es.Features = full.SelectRows(kept)
	es.FeatureCols = featureCols

	if ix := t.Index(); ix != nil {
		es.IndexNames = ix.Names()
		es.IndexValues = make([][]geotable.Value, ix.Levels())
		for lv := 0; lv < ix.Levels(); lv++ {
			level := ix.Level(lv)
			vals := make([]geotable.Value, len(kept))
			for i, row := range kept {
				vals[i] = level[row]
			}
			es.IndexValues[lv] = vals
		}
	}

	return es, nil
}

// endpointValues extracts the per-row source and target identifiers, either
// from the two index levels or from resolved columns. Explicit columns named
// by the caller take precedence over detection and must exist. A nil srcVals
// result (with nil error) signals unresolved endpoints.
func endpointValues(t *geotable.Table, srcMap *idMapping, o *options) (srcVals, dstVals []geotable.Value, err error) {
	if o.sourceCol != "" || o.targetCol != "" {
		if o.sourceCol == "" || o.targetCol == "" {
			return nil, nil, fmt.Errorf("%w: source and target columns must be named together", ErrInvalidColumn)
		}
		s, err := t.Column(o.sourceCol)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: source column %q", ErrInvalidColumn, o.sourceCol)
		}
		d, err := t.Column(o.targetCol)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: target column %q", ErrInvalidColumn, o.targetCol)
		}
		return s, d, nil
	}

	idCol := ""
	if srcMap.source != IDSourceIndex {
		idCol = srcMap.source
	}
	res, ok := resolveEndpoints(t, o, idCol)
	if !ok {
		return nil, nil, nil
	}
	if res.fromIndex {
		ix := t.Index()
		return ix.Level(0), ix.Level(1), nil
	}
	s, _ := t.Column(res.sourceCol)
	d, _ := t.Column(res.targetCol)
	return s, d, nil
}

// sharedCRS returns the single coordinate-reference tag shared by every
// tagged entity table, or "" when none is tagged or the tags disagree.
func sharedCRS(nodes map[string]*geotable.Table, order []string) string {
	crs := ""
	for _, nt := range order {
		c := nodes[nt].CRS()
		if c == "" {
			continue
		}
		if crs == "" {
			crs = c
		} else if crs != c {
			return ""
		}
	}
	return crs
}
