// Package mech models the mechanical behaviour of drill-string components: derived section
// properties, buoyed weight, and a local per-station buckling test.
//
// Buckling here compares Euler's critical column load against the Paslay-Dawson sinusoidal
// buckling load at one station. It is not a string-wide analysis.
package mech

import (
	"fmt"
	"math"

	"github.com/wellsim/wellsim/drill"
)

// BuoyancyConstant converts ppg·in² to lb/ft in the buoyed weight formula.
const BuoyancyConstant = 0.0408

// Kind distinguishes component families.
type Kind string

const (
	KindPipe   Kind = "pipe"
	KindCollar Kind = "collar"
)

// Body holds the geometry and material data common to every string component.
type Body struct {
	Name          string
	UnitWeight    float64 // lb/ft in air
	OuterDiameter float64 // in
	InnerDiameter float64 // in
	Fluid         drill.FluidConfig
	Info          map[string]string // catalog columns not used in the mechanics
}

// Component is any string component that can be tested for buckling.
type Component interface {
	Kind() Kind
	Describe() *Body
	Buckles(length, azimuth float64) bool
}

// Describe returns the body itself.
func (b *Body) Describe() *Body { return b }

// Validate rejects geometry that would make the section properties meaningless.
func (b *Body) Validate() error {
	if !(b.OuterDiameter > 0) {
		return fmt.Errorf("%w: %s: outer diameter must be positive, got %v", drill.ErrInvalidConfig, b.Name, b.OuterDiameter)
	}
	if b.InnerDiameter < 0 || b.InnerDiameter >= b.OuterDiameter {
		return fmt.Errorf("%w: %s: inner diameter %v must lie in [0, %v)", drill.ErrInvalidConfig, b.Name, b.InnerDiameter, b.OuterDiameter)
	}
	if b.UnitWeight < 0 {
		return fmt.Errorf("%w: %s: unit weight must be non-negative, got %v", drill.ErrInvalidConfig, b.Name, b.UnitWeight)
	}
	return nil
}

// Radius returns the outer radius.
func (b *Body) Radius() float64 { return b.OuterDiameter / 2 }

// BuoyedWeight returns |w + k·(ρi·ID² − ρo·OD²)|.
func (b *Body) BuoyedWeight() float64 {
	return math.Abs(b.UnitWeight + BuoyancyConstant*(b.Fluid.InnerMudWeight*b.InnerDiameter*b.InnerDiameter-
		b.Fluid.OuterMudWeight*b.OuterDiameter*b.OuterDiameter))
}

// MomentOfInertia returns the second moment of area of the annular section.
func (b *Body) MomentOfInertia() float64 {
	od2 := b.OuterDiameter * b.OuterDiameter
	id2 := b.InnerDiameter * b.InnerDiameter
	return math.Pi / 64 * (od2*od2 - id2*id2)
}

// CriticalBucklingForce returns Euler's critical load π²EI/L² for a column of the given length.
func (b *Body) CriticalBucklingForce(length float64) float64 {
	return math.Pi * math.Pi * b.Fluid.YoungsModulus * b.MomentOfInertia() / (length * length)
}

// PaslayBuckling returns the Paslay-Dawson load 2·√(EI·W·sin(azimuth)/r).
// A negative radicand is clamped to zero.
func (b *Body) PaslayBuckling(azimuth float64) float64 {
	numerator := math.Max(0, b.Fluid.YoungsModulus*b.MomentOfInertia()*b.BuoyedWeight()*math.Sin(azimuth))
	return 2 * math.Sqrt(numerator/b.Radius())
}

// Buckles reports whether the critical load at length falls below the Paslay load at azimuth.
func (b *Body) Buckles(length, azimuth float64) bool {
	return b.CriticalBucklingForce(length) < b.PaslayBuckling(azimuth)
}
