package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/geodeck/layerctl/internal/layertree"
)

const flatProject = `
name: Flat
layers:
  - name: gamma
    source: /data/b/gamma.shp
    provider: ogr
    geometry: polygon
  - name: Alpha
    source: /data/c/alpha.shp
    provider: ogr
    geometry: point
  - name: beta
    source: /data/a/beta.shp
    provider: ogr
    geometry: line
`

func TestSortByName(t *testing.T) {
	v := newEnv(t, flatProject)

	result := v.sort(SortByName)

	assertOrder(t, result.Order, []string{"Alpha", "beta", "gamma"})
	assertOrder(t, v.topNames(), []string{"Alpha", "beta", "gamma"})
	if !result.SnapshotCaptured {
		t.Errorf("first action should capture a snapshot")
	}
	if result.Plan.IsEmpty() {
		t.Errorf("reordering produced an empty plan")
	}
}

func TestSortByPath(t *testing.T) {
	v := newEnv(t, flatProject)

	result := v.sort(SortByPath)

	// /data/a < /data/b < /data/c.
	assertOrder(t, result.Order, []string{"beta", "gamma", "Alpha"})
}

func TestSortByPathNonFileLast(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: imagery
    source: url=https://maps.example.com/wms
    provider: wms
    geometry: raster
  - name: roads
    source: /data/roads.shp
    provider: ogr
    geometry: line
`)

	result := v.sort(SortByPath)

	assertOrder(t, result.Order, []string{"roads", "imagery"})
}

func TestSortByGeometry(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: dem
    geometry: raster
  - name: parcels
    geometry: polygon
  - name: wells
    geometry: point
  - name: rivers
    geometry: line
  - name: attributes
    geometry: none
`)

	result := v.sort(SortByGeometry)

	assertOrder(t, result.Order, []string{"wells", "rivers", "parcels", "dem", "attributes"})

	t.Run("ties break alphabetically", func(t *testing.T) {
		v := newEnv(t, `
layers:
  - name: Wells
    geometry: point
  - name: hydrants
    geometry: point
`)
		result := v.sort(SortByGeometry)
		assertOrder(t, result.Order, []string{"hydrants", "Wells"})
	})
}

func TestSortByDate(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: old
    source: /data/old.shp
    provider: ogr
    geometry: line
  - name: undated-a
    source: url=https://maps.example.com/wms
    provider: wms
    geometry: raster
  - name: new
    source: /data/new.shp
    provider: ogr
    geometry: line
  - name: undated-b
    provider: memory
    source: Point?crs=EPSG:4326
    geometry: point
`)
	v.prober.SetModTime("old", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	v.prober.SetModTime("new", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	result := v.sort(SortByDate)

	// Newest first, undated layers after all dated ones in their original
	// relative order.
	assertOrder(t, result.Order, []string{"new", "old", "undated-a", "undated-b"})
}

func TestSortByFeatureCount(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: wells
    geometry: point
    features: 12
  - name: parcels
    geometry: polygon
    features: 4800
  - name: dem
    geometry: raster
  - name: rivers
    geometry: line
    features: 310
`)

	result := v.sort(SortByFeatureCount)

	// Most features first; the raster has no count and sorts last.
	assertOrder(t, result.Order, []string{"parcels", "rivers", "wells", "dem"})
}

func TestSortBySize(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: small
    source: /data/small.shp
    provider: ogr
    geometry: point
  - name: big
    source: /data/big.shp
    provider: ogr
    geometry: polygon
  - name: unmeasured
    provider: memory
    source: Point?crs=EPSG:4326
    geometry: point
`)
	v.prober.SetSize("small", 1024)
	v.prober.SetSize("big", 1<<20)

	result := v.sort(SortBySize)

	assertOrder(t, result.Order, []string{"big", "small", "unmeasured"})
}

func TestSortGroups(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: mains
    geometry: line
  - group: Background
    children:
      - name: zoning
        geometry: polygon
      - name: aerial
        geometry: raster
`)

	result := v.sort(SortByName)

	// The group's children are sorted first; the group then takes its
	// position from its first post-sort child ("aerial" < "mains").
	assertOrder(t, result.Order, []string{"Background", "mains"})

	doc := v.doc()
	group := doc.Nodes[0].(*layertree.Group)
	assertOrder(t, displayNames(group.Children), []string{"aerial", "zoning"})
}

func TestSortEmptyGroupUsesOwnName(t *testing.T) {
	v := newEnv(t, `
layers:
  - name: zebra
    geometry: point
  - group: Annotations
`)

	result := v.sort(SortByName)

	assertOrder(t, result.Order, []string{"Annotations", "zebra"})
}

func TestSortIsIdempotent(t *testing.T) {
	v := newEnv(t, flatProject)

	first := v.sort(SortByName)
	second := v.sort(SortByName)

	assertOrder(t, second.Order, first.Order)
	if !second.Plan.IsEmpty() {
		t.Errorf("second sort moved nodes: %+v", second.Plan.Operations)
	}
	if second.SnapshotCaptured {
		t.Errorf("second sort captured a snapshot over the live one")
	}
}

func TestSortDryRun(t *testing.T) {
	v := newEnv(t, flatProject)

	result, err := v.eng.Sort(&SortRequest{ProjectPath: v.path, Criterion: SortByName, DryRun: true})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	assertOrder(t, result.Order, []string{"Alpha", "beta", "gamma"})
	assertOrder(t, v.topNames(), []string{"gamma", "Alpha", "beta"})
	if v.status().SnapshotHeld {
		t.Errorf("dry run captured a snapshot")
	}
}

func TestSortUnknownCriterion(t *testing.T) {
	v := newEnv(t, flatProject)

	_, err := v.eng.Sort(&SortRequest{ProjectPath: v.path, Criterion: SortCriterion("color")})
	if !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("got %v, want ErrUnknownCriterion", err)
	}
}

func TestSortMissingProject(t *testing.T) {
	v := newEnv(t, flatProject)

	_, err := v.eng.Sort(&SortRequest{ProjectPath: v.path + ".absent", Criterion: SortByName})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("got %v, want ErrProjectNotFound", err)
	}
}
