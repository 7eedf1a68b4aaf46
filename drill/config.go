package drill

import "fmt"

// FluidConfig groups the material and mud properties shared by every string component.
type FluidConfig struct {
	YoungsModulus  float64 // psi (default 30e6)
	HoleDiameter   float64 // in (default 10)
	InnerMudWeight float64 // ppg inside the string (default 15)
	OuterMudWeight float64 // ppg in the annulus (default 7.3)
}

// PipeLoadConfig groups the load-case parameters used by drill-pipe friction models.
type PipeLoadConfig struct {
	FrictionCoefficient   float64 // dimensionless (default 0.2)
	StringForce           float64 // axial force carried through a bend, lbf (default 324)
	InternalFluidPressure float64 // psi (default 12800)
	ExternalFluidPressure float64 // psi (default 4790)
	BuoyancyFactor        float64 // dimensionless (default 0.8)
}

// ScoreWeights sets the relative priority of torque, drag and buckling when ranking pipe.
// Each weight is divided by the sum of all three before use.
type ScoreWeights struct {
	Torque   float64
	Drag     float64
	Buckling float64
}

// SelectionConfig groups selector parameters.
type SelectionConfig struct {
	Weights              ScoreWeights
	PipeBucklingLength   float64 // column length used in the pipe buckling test (default 6.5)
	CollarBucklingLength float64 // column length used in the collar buckling test (default 234)
	Workers              int     // concurrent component scorers; <= 0 means one per component
}

// BitConfig groups bit and drilling-efficiency constants for the bit response model.
type BitConfig struct {
	Aggressiveness    float64 // 0.7 (unaggressive) to 1.3 (aggressive), default 1.2
	Efficiency        float64 // mechanical efficiency, default 0.35
	Diameter          float64 // in, default 12.25
	SideCuttingFactor float64 // default 1.1
	NominalRPM        float64 // default 130
}

// RSSConfig groups rotary-steerable simulation parameters.
type RSSConfig struct {
	MinPadForce        float64    // lower bound for each pad magnitude (default 10000)
	MaxPadForce        float64    // upper bound for each pad magnitude (default 50000)
	InitialPadGuess    [3]float64 // optimizer start, clipped into bounds (default 50,50,50)
	TimeDelta          float64    // seconds per step (default 5)
	StartWOB           float64    // lbf at the top of the ramp (default 1000)
	EndWOB             float64    // lbf at the bottom of the ramp (default 80000)
	MinRPMFactor       float64    // lower bound of the RPM jitter factor (default 0.75)
	MaxRPMFactor       float64    // upper bound of the RPM jitter factor (default 1.0)
	HoldOnSolveFailure bool       // true = a failed pad solve holds XY instead of failing the step
}

// NewFluidConfig creates a FluidConfig with all fields explicitly set.
func NewFluidConfig(youngsModulus, holeDiameter, innerMudWeight, outerMudWeight float64) FluidConfig {
	return FluidConfig{
		YoungsModulus:  youngsModulus,
		HoleDiameter:   holeDiameter,
		InnerMudWeight: innerMudWeight,
		OuterMudWeight: outerMudWeight,
	}
}

// NewPipeLoadConfig creates a PipeLoadConfig with all fields explicitly set.
func NewPipeLoadConfig(friction, stringForce, internalPressure, externalPressure, buoyancy float64) PipeLoadConfig {
	return PipeLoadConfig{
		FrictionCoefficient:   friction,
		StringForce:           stringForce,
		InternalFluidPressure: internalPressure,
		ExternalFluidPressure: externalPressure,
		BuoyancyFactor:        buoyancy,
	}
}

// NewScoreWeights creates ScoreWeights with all fields explicitly set.
func NewScoreWeights(torque, drag, buckling float64) ScoreWeights {
	return ScoreWeights{Torque: torque, Drag: drag, Buckling: buckling}
}

// NewBitConfig creates a BitConfig with all fields explicitly set.
func NewBitConfig(aggressiveness, efficiency, diameter, sideCutting, nominalRPM float64) BitConfig {
	return BitConfig{
		Aggressiveness:    aggressiveness,
		Efficiency:        efficiency,
		Diameter:          diameter,
		SideCuttingFactor: sideCutting,
		NominalRPM:        nominalRPM,
	}
}

// DefaultFluidConfig returns the fluid properties of the reference well.
func DefaultFluidConfig() FluidConfig { return NewFluidConfig(30e6, 10, 15, 7.3) }

// DefaultPipeLoadConfig returns the reference drill-pipe load case.
func DefaultPipeLoadConfig() PipeLoadConfig { return NewPipeLoadConfig(0.2, 324, 12800, 4790, 0.8) }

// DefaultScoreWeights returns torque=0.1, drag=0.1, buckling=0.8.
func DefaultScoreWeights() ScoreWeights { return NewScoreWeights(0.1, 0.1, 0.8) }

// DefaultSelectionConfig returns the reference selector parameters.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		Weights:              DefaultScoreWeights(),
		PipeBucklingLength:   6.5,
		CollarBucklingLength: 234,
	}
}

// DefaultBitConfig returns the reference bit.
func DefaultBitConfig() BitConfig { return NewBitConfig(1.2, 0.35, 12.25, 1.1, 130) }

// DefaultRSSConfig returns the reference steering parameters.
func DefaultRSSConfig() RSSConfig {
	return RSSConfig{
		MinPadForce:     10000,
		MaxPadForce:     50000,
		InitialPadGuess: [3]float64{50, 50, 50},
		TimeDelta:       5,
		StartWOB:        1000,
		EndWOB:          80000,
		MinRPMFactor:    0.75,
		MaxRPMFactor:    1.0,
	}
}

// Sum returns the total of the three weights.
func (w ScoreWeights) Sum() float64 { return w.Torque + w.Drag + w.Buckling }

// Validate rejects weight sets that cannot be normalized.
func (w ScoreWeights) Validate() error {
	if w.Torque < 0 || w.Drag < 0 || w.Buckling < 0 {
		return fmt.Errorf("%w: score weights must be non-negative, got %+v", ErrInvalidConfig, w)
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("%w: score weights must not all be zero", ErrInvalidConfig)
	}
	return nil
}

// Validate checks bounds, time step and jitter range.
func (c RSSConfig) Validate() error {
	if c.MinPadForce < 0 || c.MaxPadForce < c.MinPadForce {
		return fmt.Errorf("%w: pad force bounds [%v, %v] are empty or negative", ErrInvalidConfig, c.MinPadForce, c.MaxPadForce)
	}
	if !(c.TimeDelta > 0) {
		return fmt.Errorf("%w: time delta must be positive, got %v", ErrInvalidConfig, c.TimeDelta)
	}
	if c.MinRPMFactor < 0 || c.MaxRPMFactor < c.MinRPMFactor {
		return fmt.Errorf("%w: RPM factor range [%v, %v] is invalid", ErrInvalidConfig, c.MinRPMFactor, c.MaxRPMFactor)
	}
	return nil
}

// Validate checks the bit constants that appear in denominators.
func (c BitConfig) Validate() error {
	if !(c.Diameter > 0) {
		return fmt.Errorf("%w: bit diameter must be positive, got %v", ErrInvalidConfig, c.Diameter)
	}
	if c.NominalRPM < 0 {
		return fmt.Errorf("%w: nominal RPM must be non-negative, got %v", ErrInvalidConfig, c.NominalRPM)
	}
	return nil
}
