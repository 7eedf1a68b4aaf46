// Package trace records simulated RSS stations.
// This package has no dependency on drill/rss; it stores pure data types.
package trace

import "github.com/wellsim/wellsim/drill"

// Station captures one simulated step: the bit position after the step and the drilling
// state that produced it.
type Station struct {
	Step        int // zero-based step number
	TargetIndex int // target being steered toward during this step
	Coordinates drill.Point3D

	ROPAxial   float64 // ft/hr
	ROPLateral float64 // ft/hr
	TOB        float64 // ft-lbf
	WOB        float64 // lbf
	RPM        float64

	MeasuredDepth float64
	Azimuth       float64 // rad
	Inclination   float64 // rad
	DLS           float64 // deg-equivalent per 100 ft
	Buckling      bool    // collar buckles at this station
}
