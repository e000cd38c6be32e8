package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/plan"
	"github.com/geodeck/layerctl/internal/source"
)

// Geometry bucket names.
const (
	bucketPointLayers   = "Point Layers"
	bucketLineLayers    = "Line Layers"
	bucketPolygonLayers = "Polygon Layers"
	bucketRasterLayers  = "Raster Layers"
	bucketOtherLayers   = "Other Layers"
	bucketOtherSources  = "Other Sources"
)

// bucket is a transient named collection of nodes gathered during grouping.
type bucket struct {
	name    string
	other   bool // catch-all bucket, always materialized last
	members []layertree.Node
}

// Group flattens the top level and regroups every layer by the requested
// criterion.
//
// Existing top-level groups are dissolved first (one level only: a
// sub-group nested inside a dissolved group is promoted intact). Each layer
// is then classified into a named bucket, and one new group is created per
// non-empty bucket, alphabetical with the catch-all bucket last. Members
// keep their pre-flatten relative order.
func (e *Engine) Group(req *GroupRequest) (*GroupResult, error) {
	if _, err := ParseGroupCriterion(string(req.Criterion)); err != nil {
		return nil, err
	}

	s, err := e.beginAction(req.ProjectPath)
	if err != nil {
		return nil, err
	}

	// Snapshot of the pre-flatten top-level order.
	if !req.DryRun {
		e.captureSnapshot(s)
	}

	p := plan.New("group", string(req.Criterion))

	flat := layertree.PromoteTopLevel(s.doc.Nodes)
	for _, n := range s.doc.Nodes {
		if g, ok := n.(*layertree.Group); ok {
			p.Add(plan.Operation{
				Type:   plan.OpDissolveGroup,
				Node:   g.Name,
				Detail: fmt.Sprintf("promoted %d children to top level", len(g.Children)),
			})
		}
	}

	buckets := e.classify(flat, req.Criterion)

	newTop := make([]layertree.Node, 0, len(buckets))
	summaries := make([]BucketSummary, 0, len(buckets))
	for _, b := range buckets {
		group := layertree.NewGroup(b.name)
		group.Children = b.members
		newTop = append(newTop, group)

		p.Add(plan.Operation{
			Type:   plan.OpCreateGroup,
			Node:   b.name,
			Detail: fmt.Sprintf("%d members", len(b.members)),
		})
		for _, m := range b.members {
			p.Add(plan.Operation{
				Type:   plan.OpMoveLayer,
				Node:   m.DisplayName(),
				Detail: fmt.Sprintf("moved into %q", b.name),
			})
		}

		summaries = append(summaries, BucketSummary{Name: b.name, Layers: len(b.members)})
	}

	result := &GroupResult{
		Plan:    p,
		Buckets: summaries,
	}

	if req.DryRun {
		return result, nil
	}

	s.doc.Nodes = newTop
	if err := e.commit(s); err != nil {
		return nil, err
	}

	result.SnapshotCaptured = s.snapCaptured
	return result, nil
}

// classify assigns every flattened top-level node to a bucket and returns
// the non-empty buckets in their final order: alphabetical by name, with
// the catch-all bucket last. Members keep their pre-flatten relative order.
func (e *Engine) classify(flat []layertree.Node, crit GroupCriterion) []*bucket {
	otherName := bucketOtherSources
	if crit == GroupByGeometry {
		otherName = bucketOtherLayers
	}

	var folderNames map[string]string
	if crit == GroupByFolder {
		folderNames = uniqueFolderNames(layerDirs(flat))
	}

	byName := make(map[string]*bucket)
	var ordered []*bucket
	add := func(name string, other bool, n layertree.Node) {
		b, ok := byName[name]
		if !ok {
			b = &bucket{name: name, other: other}
			byName[name] = b
			ordered = append(ordered, b)
		}
		b.members = append(b.members, n)
	}

	for _, n := range flat {
		layer, ok := n.(*layertree.Layer)
		if !ok {
			// A promoted sub-group keeps its structure and lands in the
			// catch-all bucket.
			add(otherName, true, n)
			continue
		}

		switch crit {
		case GroupByGeometry:
			add(geometryBucketName(layer.Geometry), layer.Geometry.Rank() > 3, layer)
		case GroupByFolder:
			dir := source.Dir(layer)
			if dir == "" {
				add(bucketOtherSources, true, layer)
				continue
			}
			add(folderNames[dir], false, layer)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].other != ordered[j].other {
			return ordered[j].other
		}
		return strings.ToLower(ordered[i].name) < strings.ToLower(ordered[j].name)
	})

	return ordered
}

// geometryBucketName maps a geometry kind to its bucket name.
func geometryBucketName(k layertree.GeometryKind) string {
	switch k {
	case layertree.GeometryPoint:
		return bucketPointLayers
	case layertree.GeometryLine:
		return bucketLineLayers
	case layertree.GeometryPolygon:
		return bucketPolygonLayers
	case layertree.GeometryRaster:
		return bucketRasterLayers
	default:
		return bucketOtherLayers
	}
}

// layerDirs collects the distinct source directories of the file-backed
// layers, in first-seen order.
func layerDirs(nodes []layertree.Node) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, n := range nodes {
		layer, ok := n.(*layertree.Layer)
		if !ok {
			continue
		}
		dir := source.Dir(layer)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
