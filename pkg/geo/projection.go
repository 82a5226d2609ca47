// Package geo loads raw terrain records and projects geographic
// coordinates into a planar system the rasterizer can work in.
package geo

import "github.com/wroge/wgs84"

// Projection maps WGS84 geographic coordinates (longitude and latitude
// in degrees, altitude in meters) to planar x, y in meters. The altitude
// is carried through unchanged.
type Projection func(lon, lat, alt float64) (x, y, z float64)

// Lambert93 projects WGS84 geographic coordinates to RGF93 / Lambert-93
// (EPSG:2154), the conformal conic system covering metropolitan France.
func Lambert93() Projection {
	transform := wgs84.LonLat().To(wgs84.RGF93FranceLambert())

	return func(lon, lat, alt float64) (float64, float64, float64) {
		x, y, _ := transform(lon, lat, alt)
		return x, y, alt
	}
}

// Identity returns lon, lat and alt unchanged, for data that is already
// planar.
func Identity() Projection {
	return func(lon, lat, alt float64) (float64, float64, float64) {
		return lon, lat, alt
	}
}
