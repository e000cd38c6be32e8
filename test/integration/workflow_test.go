package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/geodeck/layerctl/internal/engine"
)

func TestSortByDateWorkflow(t *testing.T) {
	h := newHarness(t)

	oldPath := h.writeGeoJSON("survey/old.geojson", 2, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	newPath := h.writeGeoJSON("survey/new.geojson", 2, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	h.writeProject(fmt.Sprintf(`
layers:
  - name: old-survey
    source: %s
    provider: ogr
    geometry: point
  - name: scratch
    source: Point?crs=EPSG:4326
    provider: memory
    geometry: point
  - name: new-survey
    source: %s
    provider: ogr
    geometry: point
`, oldPath, newPath))

	result, err := h.eng.Sort(&engine.SortRequest{ProjectPath: h.projectPath, Criterion: engine.SortByDate})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	// Newest first, the dateless in-memory layer last.
	assertOrder(t, result.Order, []string{"new-survey", "old-survey", "scratch"})
	assertOrder(t, h.topNames(), []string{"new-survey", "old-survey", "scratch"})
}

func TestSortByFeatureCountWorkflow(t *testing.T) {
	h := newHarness(t)

	sparse := h.writeGeoJSON("sparse.geojson", 1, time.Now())
	dense := h.writeGeoJSON("dense.geojson", 5, time.Now())

	h.writeProject(fmt.Sprintf(`
layers:
  - name: sparse
    source: %s
    provider: ogr
    geometry: point
  - name: dense
    source: %s
    provider: ogr
    geometry: point
`, sparse, dense))

	result, err := h.eng.Sort(&engine.SortRequest{ProjectPath: h.projectPath, Criterion: engine.SortByFeatureCount})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}

	// Counts are read from the GeoJSON files themselves.
	assertOrder(t, result.Order, []string{"dense", "sparse"})
}

func TestGroupByFolderWorkflow(t *testing.T) {
	h := newHarness(t)

	roads23 := h.writeGeoJSON("2023/roads/roads.geojson", 3, time.Now())
	roads24 := h.writeGeoJSON("2024/roads/roads.geojson", 3, time.Now())
	lakes := h.writeGeoJSON("lakes/lakes.geojson", 2, time.Now())

	h.writeProject(fmt.Sprintf(`
layers:
  - name: roads-2023
    source: %s
    provider: ogr
    geometry: line
  - name: lakes
    source: %s
    provider: ogr
    geometry: polygon
  - name: roads-2024
    source: %s
    provider: ogr
    geometry: line
  - name: basemap
    source: url=https://maps.example.com/wms
    provider: wms
    geometry: raster
`, roads23, lakes, roads24))

	result, err := h.eng.Group(&engine.GroupRequest{ProjectPath: h.projectPath, Criterion: engine.GroupByFolder})
	if err != nil {
		t.Fatalf("Group: %v", err)
	}

	names := make([]string, len(result.Buckets))
	for i, b := range result.Buckets {
		names[i] = b.Name
	}
	assertOrder(t, names, []string{"2023/roads", "2024/roads", "lakes", "Other Sources"})
	assertOrder(t, h.topNames(), names)
}

func TestSortGroupRestoreWorkflow(t *testing.T) {
	h := newHarness(t)

	wells := h.writeGeoJSON("wells.geojson", 4, time.Now())
	parcels := h.writeGeoJSON("parcels.geojson", 9, time.Now())

	h.writeProject(fmt.Sprintf(`
layers:
  - name: parcels
    source: %s
    provider: ogr
    geometry: polygon
  - name: wells
    source: %s
    provider: ogr
    geometry: point
`, parcels, wells))

	sortRes, err := h.eng.Sort(&engine.SortRequest{ProjectPath: h.projectPath, Criterion: engine.SortByGeometry})
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if !sortRes.SnapshotCaptured {
		t.Fatalf("first action did not capture the original order")
	}
	assertOrder(t, h.topNames(), []string{"wells", "parcels"})

	if _, err := h.eng.Group(&engine.GroupRequest{ProjectPath: h.projectPath, Criterion: engine.GroupByGeometry}); err != nil {
		t.Fatalf("Group: %v", err)
	}
	assertOrder(t, h.topNames(), []string{"Point Layers", "Polygon Layers"})

	restoreRes, err := h.eng.Restore(&engine.RestoreRequest{ProjectPath: h.projectPath})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !restoreRes.Restored {
		t.Fatalf("restore found no snapshot after two actions")
	}
	assertOrder(t, h.topNames(), []string{"parcels", "wells"})

	st, err := h.eng.Status(&engine.StatusRequest{ProjectPath: h.projectPath})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.SnapshotHeld {
		t.Errorf("snapshot slot still held after restore")
	}
}

func TestExternalEditWorkflow(t *testing.T) {
	h := newHarness(t)

	h.writeProject(`
layers:
  - name: beta
    geometry: point
  - name: alpha
    geometry: line
`)

	if _, err := h.eng.Sort(&engine.SortRequest{ProjectPath: h.projectPath, Criterion: engine.SortByName}); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	// An outside tool rewrites the document.
	content, err := os.ReadFile(h.projectPath)
	if err != nil {
		t.Fatalf("read project: %v", err)
	}
	if err := os.WriteFile(h.projectPath, append(content, []byte("\n# edited elsewhere\n")...), 0644); err != nil {
		t.Fatalf("rewrite project: %v", err)
	}

	restoreRes, err := h.eng.Restore(&engine.RestoreRequest{ProjectPath: h.projectPath})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restoreRes.Restored {
		t.Errorf("restore applied a snapshot invalidated by an external edit")
	}
	assertOrder(t, h.topNames(), []string{"alpha", "beta"})
}
