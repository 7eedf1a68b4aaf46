package drill

import "math"

// Point3D is a position in (east, north, true vertical depth) coordinates.
// TVD grows downwards.
type Point3D struct {
	East  float64 `json:"east" yaml:"east"`
	North float64 `json:"north" yaml:"north"`
	TVD   float64 `json:"tvd" yaml:"tvd"`
}

// NewPoint3D creates a Point3D from its three components.
func NewPoint3D(east, north, tvd float64) Point3D {
	return Point3D{East: east, North: north, TVD: tvd}
}

// Add returns the component-wise sum of two points.
func (p Point3D) Add(o Point3D) Point3D {
	return Point3D{p.East + o.East, p.North + o.North, p.TVD + o.TVD}
}

// Sub returns the component-wise difference p - o.
func (p Point3D) Sub(o Point3D) Point3D {
	return Point3D{p.East - o.East, p.North - o.North, p.TVD - o.TVD}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point3D) Norm() float64 {
	return math.Sqrt(p.East*p.East + p.North*p.North + p.TVD*p.TVD)
}

// Distance returns the Euclidean distance between p and o.
func (p Point3D) Distance(o Point3D) float64 {
	return p.Sub(o).Norm()
}

// IsFinite reports whether every coordinate is neither NaN nor infinite.
func (p Point3D) IsFinite() bool {
	for _, v := range [3]float64{p.East, p.North, p.TVD} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Horizontal returns the horizontal displacement of p from the vertical axis.
func (p Point3D) Horizontal() float64 {
	return math.Hypot(p.East, p.North)
}
