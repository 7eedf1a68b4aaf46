package mech

import (
	"math"

	"github.com/wellsim/wellsim/drill"
)

// Segment is the pair of consecutive survey stations a friction model is evaluated over.
type Segment struct {
	PrevAzimuth     float64
	Azimuth         float64
	PrevInclination float64
	Inclination     float64
	Length          float64 // course length (MD difference)
}

// SegmentBetween builds the segment from prev to cur.
func SegmentBetween(prev, cur drill.SurveyStation) Segment {
	return Segment{
		PrevAzimuth:     prev.Azimuth,
		Azimuth:         cur.Azimuth,
		PrevInclination: prev.Inclination,
		Inclination:     cur.Inclination,
		Length:          cur.MeasuredDepth - prev.MeasuredDepth,
	}
}

// FrictionModel supplies the empirical torque, drag and side-cutting forms for drill pipe.
type FrictionModel interface {
	Torque(p *DrillPipe, seg Segment) float64
	Drag(p *DrillPipe, seg Segment) float64
	SideCuttingFactor(p *DrillPipe) float64
}

// SoftString is the Johancsik soft-string friction model. The string carries
// Loads.StringForce through each segment and rests on the low side with its buoyed weight.
type SoftString struct{}

// NormalForce returns the side load the pipe exerts on the borehole wall over seg.
func (SoftString) NormalForce(p *DrillPipe, seg Segment) float64 {
	avgInc := (seg.PrevInclination + seg.Inclination) / 2
	dAz := math.Remainder(seg.Azimuth-seg.PrevAzimuth, 2*math.Pi)
	dInc := seg.Inclination - seg.PrevInclination
	force := p.Loads.StringForce
	weight := p.BuoyedWeight() * math.Abs(seg.Length)
	s := math.Sin(avgInc)
	return math.Hypot(force*dAz*s, force*dInc+weight*s)
}

// Drag implements FrictionModel: μ·N.
func (m SoftString) Drag(p *DrillPipe, seg Segment) float64 {
	return p.Loads.FrictionCoefficient * m.NormalForce(p, seg)
}

// Torque implements FrictionModel: μ·N·r with r in feet.
func (m SoftString) Torque(p *DrillPipe, seg Segment) float64 {
	return p.Loads.FrictionCoefficient * m.NormalForce(p, seg) * p.OuterDiameter / 24
}

// SideCuttingFactor implements FrictionModel: the buoyancy factor scaled by the radial
// clearance ratio between hole and pipe.
func (SoftString) SideCuttingFactor(p *DrillPipe) float64 {
	hole := p.Fluid.HoleDiameter
	if hole <= 0 {
		return 0
	}
	return p.Loads.BuoyancyFactor * math.Max(0, hole-p.OuterDiameter) / hole
}
