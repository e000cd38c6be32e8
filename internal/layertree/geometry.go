package layertree

import (
	"fmt"
	"strings"
)

// GeometryKind classifies a layer's geometry.
type GeometryKind int

const (
	// GeometryUnknown is the zero value for layers with no declared geometry.
	GeometryUnknown GeometryKind = iota
	// GeometryPoint is point geometry.
	GeometryPoint
	// GeometryLine is line geometry.
	GeometryLine
	// GeometryPolygon is polygon geometry.
	GeometryPolygon
	// GeometryRaster marks raster layers.
	GeometryRaster
	// GeometryNone marks geometry-less vector layers (attribute tables).
	GeometryNone
)

// geometryRanks fixes the display order: Point < Line < Polygon < Raster,
// then everything else.
var geometryRanks = map[GeometryKind]int{
	GeometryPoint:   0,
	GeometryLine:    1,
	GeometryPolygon: 2,
	GeometryRaster:  3,
}

// Rank returns the geometry's position in the fixed sort order. Kinds
// without a defined position rank after all defined ones.
func (k GeometryKind) Rank() int {
	if r, ok := geometryRanks[k]; ok {
		return r
	}
	return 4
}

// String returns the lowercase name used in project documents.
func (k GeometryKind) String() string {
	switch k {
	case GeometryPoint:
		return "point"
	case GeometryLine:
		return "line"
	case GeometryPolygon:
		return "polygon"
	case GeometryRaster:
		return "raster"
	case GeometryNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseGeometry parses a geometry name from a project document.
func ParseGeometry(s string) (GeometryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return GeometryPoint, nil
	case "line", "linestring":
		return GeometryLine, nil
	case "polygon":
		return GeometryPolygon, nil
	case "raster":
		return GeometryRaster, nil
	case "none":
		return GeometryNone, nil
	case "", "unknown":
		return GeometryUnknown, nil
	default:
		return GeometryUnknown, fmt.Errorf("unknown geometry kind %q", s)
	}
}

// IsVector reports whether the kind describes vector data. Feature counts
// only make sense for vector layers.
func (k GeometryKind) IsVector() bool {
	switch k {
	case GeometryPoint, GeometryLine, GeometryPolygon, GeometryNone:
		return true
	default:
		return false
	}
}
