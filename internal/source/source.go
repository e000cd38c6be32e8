// Package source decodes provider-specific data source strings into on-disk
// file paths.
//
// Providers encode the underlying file differently: OGR and GDAL sources may
// carry sublayer suffixes ("path|layername=roads"), SpatiaLite sources embed
// the database path in a connection string ("dbname='/data/x.sqlite'
// table=..."), and delimited-text sources use file:// URLs. Network and
// database services (WMS, WFS, PostGIS) and in-memory layers have no on-disk
// file at all.
package source

import (
	"path/filepath"
	"strings"

	"github.com/geodeck/layerctl/internal/layertree"
)

// serviceProviders are providers that never resolve to a local file.
var serviceProviders = map[string]bool{
	"postgres": true,
	"mssql":    true,
	"oracle":   true,
	"wms":      true,
	"wfs":      true,
	"wcs":      true,
	"xyz":      true,
	"arcgis":   true,
	"memory":   true,
}

// FilePath extracts the on-disk file path from a layer's source string.
// Returns "" when the layer is not file-backed (network service, database
// table, in-memory dataset, or empty source).
func FilePath(layer *layertree.Layer) string {
	if layer == nil || layer.Source == "" {
		return ""
	}
	if serviceProviders[strings.ToLower(layer.Provider)] {
		return ""
	}
	return decode(layer.Source)
}

// IsFileBacked reports whether the layer's source resolves to a local file
// path.
func IsFileBacked(layer *layertree.Layer) bool {
	return FilePath(layer) != ""
}

// Dir returns the directory of the layer's backing file, or "" for non-file
// layers and for paths with no directory component.
func Dir(layer *layertree.Layer) string {
	path := FilePath(layer)
	if path == "" {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return dir
}

// decode parses a raw source string down to a plain file path.
func decode(raw string) string {
	s := strings.TrimSpace(raw)

	// SpatiaLite connection string: dbname='/path/to.sqlite' table="roads".
	if idx := strings.Index(s, "dbname="); idx >= 0 {
		rest := strings.TrimSpace(s[idx+len("dbname="):])
		if strings.HasPrefix(rest, "'") {
			if end := strings.Index(rest[1:], "'"); end >= 0 {
				return rest[1 : end+1]
			}
		}
	}

	// OGR / GDAL sublayer suffix: path|layername=... or path|layerid=...
	candidate := strings.TrimSpace(strings.SplitN(s, "|", 2)[0])

	// Pure URLs are not on-disk files.
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return ""
	}

	// delimitedtext sources use file:// URLs; on Windows they look like
	// file:///C:/data/points.csv.
	if strings.HasPrefix(candidate, "file://") {
		candidate = candidate[len("file://"):]
		if len(candidate) > 2 && candidate[0] == '/' && candidate[2] == ':' {
			candidate = candidate[1:]
		}
		// Strip delimitedtext query parameters.
		if q := strings.IndexByte(candidate, '?'); q >= 0 {
			candidate = candidate[:q]
		}
	}

	return candidate
}
