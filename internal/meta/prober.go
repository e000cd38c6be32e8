// Package meta probes layer metadata used as sort keys.
//
// Size and modification time come from the layer's backing file; feature
// counts come from the declared document attribute or, for GeoJSON sources,
// from the file itself. A metadata lookup can never fail an action: every
// probe reports ok=false instead of an error, and the caller deprioritizes
// the layer for the criterion being applied.
package meta

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/geodeck/layerctl/internal/fsops"
	"github.com/geodeck/layerctl/internal/layertree"
	"github.com/geodeck/layerctl/internal/source"
)

// Prober provides layer metadata lookups.
type Prober interface {
	// Size returns the size in bytes of the layer's backing file.
	Size(layer *layertree.Layer) (int64, bool)

	// ModTime returns the modification time of the layer's backing file.
	ModTime(layer *layertree.Layer) (time.Time, bool)

	// FeatureCount returns the layer's feature count. Only vector layers
	// have one.
	FeatureCount(layer *layertree.Layer) (int64, bool)
}

// FSProber implements Prober against the real filesystem.
type FSProber struct {
	fs fsops.FS
}

// NewFSProber creates a new FSProber.
func NewFSProber(fs fsops.FS) *FSProber {
	return &FSProber{fs: fs}
}

// Size returns the size of the layer's backing file, or ok=false for
// non-file layers and unreadable files.
func (p *FSProber) Size(layer *layertree.Layer) (int64, bool) {
	path := source.FilePath(layer)
	if path == "" {
		return 0, false
	}
	info, err := p.fs.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}

// ModTime returns the modification time of the layer's backing file, or
// ok=false for non-file layers and unreadable files.
func (p *FSProber) ModTime(layer *layertree.Layer) (time.Time, bool) {
	path := source.FilePath(layer)
	if path == "" {
		return time.Time{}, false
	}
	info, err := p.fs.Stat(path)
	if err != nil || info.IsDir() {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// FeatureCount returns the layer's feature count. The declared document
// attribute wins; GeoJSON sources are counted from the file. Non-vector
// layers and layers with no readable count report ok=false.
func (p *FSProber) FeatureCount(layer *layertree.Layer) (int64, bool) {
	if !layer.Geometry.IsVector() {
		return 0, false
	}
	if layer.Features != nil {
		return *layer.Features, true
	}

	path := source.FilePath(layer)
	if path == "" || !isGeoJSON(path) {
		return 0, false
	}
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return 0, false
	}
	return countGeoJSONFeatures(data)
}

func isGeoJSON(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".geojson") || strings.HasSuffix(lower, ".json")
}

// countGeoJSONFeatures counts the features of a GeoJSON document. A
// FeatureCollection counts its features array; a single Feature counts as
// one.
func countGeoJSONFeatures(data []byte) (int64, bool) {
	var doc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, false
	}
	switch doc.Type {
	case "FeatureCollection":
		return int64(len(doc.Features)), true
	case "Feature":
		return 1, true
	default:
		return 0, false
	}
}

// FakeProber implements Prober with predetermined values for testing.
type FakeProber struct {
	sizes    map[string]int64
	modTimes map[string]time.Time
	counts   map[string]int64
}

// NewFakeProber creates a new FakeProber.
func NewFakeProber() *FakeProber {
	return &FakeProber{
		sizes:    make(map[string]int64),
		modTimes: make(map[string]time.Time),
		counts:   make(map[string]int64),
	}
}

// SetSize sets the size reported for a layer name.
func (p *FakeProber) SetSize(name string, size int64) {
	p.sizes[name] = size
}

// SetModTime sets the modification time reported for a layer name.
func (p *FakeProber) SetModTime(name string, t time.Time) {
	p.modTimes[name] = t
}

// SetFeatureCount sets the feature count reported for a layer name.
func (p *FakeProber) SetFeatureCount(name string, n int64) {
	p.counts[name] = n
}

// Size returns the predetermined size for the layer.
func (p *FakeProber) Size(layer *layertree.Layer) (int64, bool) {
	v, ok := p.sizes[layer.Name]
	return v, ok
}

// ModTime returns the predetermined modification time for the layer.
func (p *FakeProber) ModTime(layer *layertree.Layer) (time.Time, bool) {
	v, ok := p.modTimes[layer.Name]
	return v, ok
}

// FeatureCount returns the declared count or the predetermined one.
func (p *FakeProber) FeatureCount(layer *layertree.Layer) (int64, bool) {
	if !layer.Geometry.IsVector() {
		return 0, false
	}
	if layer.Features != nil {
		return *layer.Features, true
	}
	v, ok := p.counts[layer.Name]
	return v, ok
}
