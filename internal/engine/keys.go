package engine

import (
	"strings"

	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/source"
)

// nodeKey is the sort key of one node under one criterion. Nodes with a
// missing key always order after nodes with a present key; among themselves
// they keep their original relative order.
type nodeKey struct {
	missing bool
	num     int64
	str     string
	rank    int
}

// layerKey computes the sort key of a layer.
func (e *Engine) layerKey(crit SortCriterion, l *layertree.Layer) nodeKey {
	switch crit {
	case SortByPath:
		path := source.FilePath(l)
		if path == "" {
			return nodeKey{missing: true}
		}
		return nodeKey{str: strings.ToLower(path)}

	case SortByName:
		return nodeKey{str: strings.ToLower(l.Name)}

	case SortByDate:
		t, ok := e.prober.ModTime(l)
		if !ok {
			return nodeKey{missing: true}
		}
		return nodeKey{num: t.UnixNano()}

	case SortByGeometry:
		return nodeKey{rank: l.Geometry.Rank(), str: strings.ToLower(l.Name)}

	case SortByFeatureCount:
		n, ok := e.prober.FeatureCount(l)
		if !ok {
			return nodeKey{missing: true}
		}
		return nodeKey{num: n}

	case SortBySize:
		size, ok := e.prober.Size(l)
		if !ok {
			return nodeKey{missing: true}
		}
		return nodeKey{num: size}
	}
	return nodeKey{missing: true}
}

// groupFallbackKey is the key used for a group with no children to
// represent it, and for sub-groups encountered while sorting a group's
// immediate children. Name-based criteria fall back to the group name;
// metadata criteria have nothing to measure, so the group sorts last.
func groupFallbackKey(crit SortCriterion, g *layertree.Group) nodeKey {
	switch crit {
	case SortByPath, SortByName:
		return nodeKey{str: strings.ToLower(g.Name)}
	case SortByGeometry:
		// After every layer geometry rank.
		return nodeKey{rank: 5, str: strings.ToLower(g.Name)}
	default:
		return nodeKey{missing: true}
	}
}

// compareKeys orders two keys under a criterion. A zero result keeps the
// nodes in their original relative order (the sort is stable).
func compareKeys(crit SortCriterion, a, b nodeKey) int {
	if a.missing != b.missing {
		if a.missing {
			return 1
		}
		return -1
	}
	if a.missing {
		return 0
	}

	switch crit {
	case SortByPath, SortByName:
		return strings.Compare(a.str, b.str)

	case SortByGeometry:
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return strings.Compare(a.str, b.str)

	case SortByDate, SortByFeatureCount, SortBySize:
		// Descending: newest / most / largest first.
		switch {
		case a.num > b.num:
			return -1
		case a.num < b.num:
			return 1
		default:
			return 0
		}
	}
	return 0
}
