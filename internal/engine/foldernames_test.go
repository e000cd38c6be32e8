package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUniqueFolderNames(t *testing.T) {
	cases := []struct {
		name string
		dirs []string
		want map[string]string
	}{
		{
			name: "distinct base names stay short",
			dirs: []string{"/data/roads", "/data/lakes"},
			want: map[string]string{
				"/data/roads": "roads",
				"/data/lakes": "lakes",
			},
		},
		{
			name: "colliding base names grow a parent",
			dirs: []string{"/data/2023/roads", "/data/2024/roads", "/data/lakes"},
			want: map[string]string{
				"/data/2023/roads": "2023/roads",
				"/data/2024/roads": "2024/roads",
				"/data/lakes":      "lakes",
			},
		},
		{
			name: "deep collision grows until paths differ",
			dirs: []string{"/a/x/y", "/b/x/y"},
			want: map[string]string{
				"/a/x/y": "a/x/y",
				"/b/x/y": "b/x/y",
			},
		},
		{
			name: "identical paths stop growing",
			dirs: []string{"/data/roads", "/data/roads"},
			want: map[string]string{
				"/data/roads": "data/roads",
			},
		},
		{
			name: "empty set",
			dirs: nil,
			want: map[string]string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uniqueFolderNames(tc.dirs)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("uniqueFolderNames(%v) mismatch (-want +got):\n%s", tc.dirs, diff)
			}
		})
	}
}
