// README: Shared primitive types used across modules.
package types

// ID is an opaque identifier.
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the point is the (0,0) null island marker used by
// upstream feeds for missing coordinates.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}
