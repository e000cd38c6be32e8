package layertree

import "testing"

func TestParseGeometry(t *testing.T) {
	cases := []struct {
		in      string
		want    GeometryKind
		wantErr bool
	}{
		{"point", GeometryPoint, false},
		{"Line", GeometryLine, false},
		{"linestring", GeometryLine, false},
		{"POLYGON", GeometryPolygon, false},
		{"raster", GeometryRaster, false},
		{"none", GeometryNone, false},
		{"", GeometryUnknown, false},
		{"unknown", GeometryUnknown, false},
		{"hexagon", GeometryUnknown, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseGeometry(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseGeometry(%q) succeeded, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGeometry(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseGeometry(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGeometryRank(t *testing.T) {
	order := []GeometryKind{GeometryPoint, GeometryLine, GeometryPolygon, GeometryRaster}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%v should rank before %v", order[i-1], order[i])
		}
	}
	if GeometryUnknown.Rank() <= GeometryRaster.Rank() {
		t.Errorf("unknown geometry should rank after raster")
	}
	if GeometryNone.Rank() <= GeometryRaster.Rank() {
		t.Errorf("geometry-less tables should rank after raster")
	}
}

func TestGeometryIsVector(t *testing.T) {
	if !GeometryPoint.IsVector() || !GeometryNone.IsVector() {
		t.Errorf("point and geometry-less layers are vector layers")
	}
	if GeometryRaster.IsVector() || GeometryUnknown.IsVector() {
		t.Errorf("raster and unknown layers are not vector layers")
	}
}
