// Package mapsync keeps the guide's scrollable card list and the map in
// agreement about which place is highlighted. It models the browser-side
// pieces as plain types: a Surface wrapping the map engine, an Observer
// electing the most visible card, and a Coordinator arbitrating between
// deliberate clicks and passive scroll tracking.
//
// Everything here runs on a single goroutine, mirroring the browser event
// loop. The "lock" the Coordinator takes is a deadline, not a mutex.
package mapsync

import "math"

// tileSize is the side of the base tile in world-coordinate pixels. The
// projection scale at zoom z is 2^z world pixels per tile pixel.
const tileSize = 256

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point is a position in world coordinates (zoom-0 pixel space).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps a geographic coordinate to world coordinates using the Web
// Mercator projection. Latitude is clamped just short of the poles where the
// projection diverges.
func Project(ll LatLng) Point {
	siny := math.Sin(ll.Lat * math.Pi / 180)
	if siny > 0.9999 {
		siny = 0.9999
	}
	if siny < -0.9999 {
		siny = -0.9999
	}
	return Point{
		X: tileSize * (0.5 + ll.Lng/360),
		Y: tileSize * (0.5 - math.Log((1+siny)/(1-siny))/(4*math.Pi)),
	}
}

// Unproject is the inverse of Project.
func Unproject(p Point) LatLng {
	lng := (p.X/tileSize - 0.5) * 360
	k := math.Exp(4 * math.Pi * (0.5 - p.Y/tileSize))
	siny := (k - 1) / (k + 1)
	return LatLng{
		Lat: math.Asin(siny) * 180 / math.Pi,
		Lng: lng,
	}
}

// TargetCenter computes the map center that places marker at pixel offset
// (dx, dy) from the viewport center at the given zoom. The pixel offset is
// converted into world units by dividing by the projection scale, so the
// result must be recomputed whenever zoom changes.
func TargetCenter(marker LatLng, dx, dy, zoom float64) LatLng {
	scale := math.Pow(2, zoom)
	w := Project(marker)
	return Unproject(Point{X: w.X - dx/scale, Y: w.Y - dy/scale})
}

// ScreenDistance returns the distance in screen pixels between two map
// centers at the given zoom. Used to suppress sub-pixel recentering.
func ScreenDistance(a, b LatLng, zoom float64) float64 {
	scale := math.Pow(2, zoom)
	pa, pb := Project(a), Project(b)
	dx := (pa.X - pb.X) * scale
	dy := (pa.Y - pb.Y) * scale
	return math.Hypot(dx, dy)
}
