// Package rss simulates a rotary-steerable bit following a planned trajectory one
// fixed time step at a time.
package rss

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/bit"
	"github.com/wellsim/wellsim/drill/trace"
)

const secondsPerHour = 3600

// Float64Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// Buckler reports whether a component buckles at a column length and azimuth.
type Buckler interface {
	Buckles(length, azimuth float64) bool
}

// SideCutter supplies the side-cutting aggressiveness of the drill string.
type SideCutter interface {
	SideCuttingFactor() float64
}

// Params holds everything a Simulator needs. Zero Formation or CCS tables fall back to
// DefaultFormation and DefaultCCS; a nil Model falls back to bit.Drillbotics.
type Params struct {
	Start   drill.Point3D
	Targets []drill.Point3D // depth ordered; usually the trajectory stations

	Formation    []drill.Sample // formation aggressiveness by TVD
	CCS          []drill.Sample // confined compressive strength by TVD
	StationDelta float64        // WOB ramp spacing
	Convention   drill.SurveyConvention

	Collar         Buckler    // nil disables the buckling check
	Pipe           SideCutter // nil means zero side force
	BucklingLength float64

	Bit   drill.BitConfig
	RSS   drill.RSSConfig
	Model bit.Model
	RPM   Float64Source
}

// DefaultFormation is a single formation of aggressiveness 0.6 from the surface down.
func DefaultFormation() []drill.Sample { return []drill.Sample{{Depth: 0, Value: 0.6}} }

// DefaultCCS is a uniform 30000 psi rock strength.
func DefaultCCS() []drill.Sample { return []drill.Sample{{Depth: 0, Value: 30000}} }

// ParamsFromPlan seeds Params from a materialized plan: the bit starts on the first
// trajectory station and steers toward each following one.
func ParamsFromPlan(plan drill.WellPlan, traj *drill.Trajectory) Params {
	p := Params{
		Targets:        traj.Positions(),
		Formation:      plan.Formation,
		CCS:            plan.CCS,
		StationDelta:   plan.StationDelta,
		Convention:     plan.Convention,
		BucklingLength: drill.DefaultSelectionConfig().CollarBucklingLength,
		Bit:            drill.DefaultBitConfig(),
		RSS:            drill.DefaultRSSConfig(),
	}
	if traj.Len() > 0 {
		p.Start = traj.Stations[0].Position
	}
	return p
}

// Simulator is a single-use generator of simulated stations. It advances monotonically and
// cannot be rewound. Not safe for concurrent use.
type Simulator struct {
	params    Params
	formation *drill.StepTable
	ccs       *drill.StepTable
	wob       *drill.StepTable
	pads      *PadSolver
	model     bit.Model

	pos      drill.Point3D
	target   int
	prevMD   float64
	prevAz   float64
	prevInc  float64
	step     int
	finished bool
}

// NewSimulator validates p and prepares the lookup tables.
func NewSimulator(p Params) (*Simulator, error) {
	if len(p.Targets) == 0 {
		return nil, fmt.Errorf("%w: simulation needs at least one target", drill.ErrInvalidGeometry)
	}
	if !p.Start.IsFinite() {
		return nil, fmt.Errorf("%w: start %+v is not finite", drill.ErrInvalidGeometry, p.Start)
	}
	for i, t := range p.Targets {
		if !t.IsFinite() {
			return nil, fmt.Errorf("%w: target %d has non-finite coordinates", drill.ErrInvalidGeometry, i)
		}
	}
	if p.RPM == nil {
		return nil, fmt.Errorf("%w: RPM source is required", drill.ErrInvalidConfig)
	}
	if !drill.IsValidConvention(string(p.Convention)) {
		return nil, fmt.Errorf("%w: unknown survey convention %q", drill.ErrInvalidConfig, p.Convention)
	}
	if err := p.RSS.Validate(); err != nil {
		return nil, err
	}
	if err := p.Bit.Validate(); err != nil {
		return nil, err
	}
	if len(p.Formation) == 0 {
		p.Formation = DefaultFormation()
	}
	if len(p.CCS) == 0 {
		p.CCS = DefaultCCS()
	}
	if p.Model == nil {
		p.Model = bit.Drillbotics{}
	}

	formation, err := drill.NewStepTable(p.Formation)
	if err != nil {
		return nil, fmt.Errorf("formation table: %w", err)
	}
	ccs, err := drill.NewStepTable(p.CCS)
	if err != nil {
		return nil, fmt.Errorf("CCS table: %w", err)
	}
	last := p.Targets[len(p.Targets)-1]
	spacing := p.StationDelta
	if spacing <= 0 {
		spacing = drill.DefaultWellPlan().StationDelta
	}
	wob, err := drill.LinearRamp(p.RSS.StartWOB, p.RSS.EndWOB, math.Min(p.Start.TVD, last.TVD), last.TVD, spacing)
	if err != nil {
		return nil, fmt.Errorf("WOB ramp: %w", err)
	}

	return &Simulator{
		params:    p,
		formation: formation,
		ccs:       ccs,
		wob:       wob,
		pads:      NewPadSolver(p.RSS),
		model:     p.Model,
		pos:       p.Start,
		finished:  p.Start.TVD >= last.TVD,
	}, nil
}

// Position returns the current bit position.
func (s *Simulator) Position() drill.Point3D { return s.pos }

// TargetIndex returns the index of the target currently steered toward.
func (s *Simulator) TargetIndex() int { return s.target }

// Done reports whether the simulator will yield no further stations.
func (s *Simulator) Done() bool { return s.finished }

// Next advances one time step. ok is false once the bit has reached the deepest target or
// a step has failed; every later call returns ok=false with a nil error.
func (s *Simulator) Next() (station trace.Station, ok bool, err error) {
	if s.finished {
		return trace.Station{}, false, nil
	}
	station, err = s.advance()
	if err != nil {
		s.finished = true
		return trace.Station{}, false, err
	}
	return station, true, nil
}

func (s *Simulator) advance() (trace.Station, error) {
	p := s.params
	tvd := s.pos.TVD

	rpm := p.Bit.NominalRPM * (p.RSS.MinRPMFactor + (p.RSS.MaxRPMFactor-p.RSS.MinRPMFactor)*p.RPM.Float64())
	in := bit.Input{
		FormationAggressiveness: s.formation.At(tvd),
		BitAggressiveness:       p.Bit.Aggressiveness,
		WOB:                     s.wob.At(tvd),
		RPM:                     rpm,
		Efficiency:              p.Bit.Efficiency,
		Diameter:                p.Bit.Diameter,
		CCS:                     s.ccs.At(tvd),
		SideCuttingFactor:       p.Bit.SideCuttingFactor,
	}
	if p.Pipe != nil {
		in.SideForce = p.Pipe.SideCuttingFactor()
	}
	resp := s.model.Respond(in)
	if !(resp.ROPAxial > 0) || math.IsInf(resp.ROPAxial, 0) {
		return trace.Station{}, fmt.Errorf("%w: axial ROP %v at TVD %v", drill.ErrNoPenetration, resp.ROPAxial, tvd)
	}

	target := p.Targets[s.target]
	var dEast, dNorth float64
	mags, err := s.pads.Solve(s.pos, target)
	switch {
	case err == nil:
		dEast, dNorth = PadOffset(mags)
	case p.RSS.HoldOnSolveFailure:
		logrus.Warnf("rss: step %d holding horizontal position: %v", s.step, err)
	default:
		return trace.Station{}, fmt.Errorf("step %d: %w", s.step, err)
	}

	next := drill.NewPoint3D(
		s.pos.East+dEast,
		s.pos.North+dNorth,
		tvd+resp.ROPAxial*p.RSS.TimeDelta/secondsPerHour,
	)
	md := s.prevMD + next.Distance(s.pos)
	az, inc := drill.Orientation(s.pos, next, p.Convention)
	buckling := false
	if p.Collar != nil {
		buckling = p.Collar.Buckles(p.BucklingLength, az)
	}

	station := trace.Station{
		Step:          s.step,
		TargetIndex:   s.target,
		Coordinates:   next,
		ROPAxial:      resp.ROPAxial,
		ROPLateral:    resp.ROPLateral,
		TOB:           resp.TOB,
		WOB:           in.WOB,
		RPM:           rpm,
		MeasuredDepth: md,
		Azimuth:       az,
		Inclination:   inc,
		DLS:           drill.DoglegSeverity(s.prevMD, md, s.prevAz, az, s.prevInc, inc),
		Buckling:      buckling,
	}
	logrus.Debugf("[step %05d] target=%d tvd=%.2f md=%.2f rop=%.2f wob=%.0f rpm=%.1f dls=%.4f",
		s.step, s.target, next.TVD, md, resp.ROPAxial, in.WOB, rpm, station.DLS)

	s.pos = next
	s.prevMD, s.prevAz, s.prevInc = md, az, inc
	s.step++
	for s.target < len(p.Targets)-1 && next.TVD >= p.Targets[s.target].TVD {
		s.target++
	}
	if next.TVD >= p.Targets[len(p.Targets)-1].TVD {
		s.finished = true
	}
	return station, nil
}

// Run drains the simulator into a new trace, checking ctx between steps.
// On error the trace holds every station produced before the failure.
func (s *Simulator) Run(ctx context.Context) (*trace.SimulationTrace, error) {
	st := trace.NewSimulationTrace()
	logrus.Infof("rss: run %s starting at TVD %.2f toward %d targets", st.RunID, s.pos.TVD, len(s.params.Targets))
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		station, ok, err := s.Next()
		if err != nil {
			return st, err
		}
		if !ok {
			break
		}
		st.Record(station)
	}
	logrus.Infof("rss: run %s finished after %d steps at TVD %.2f", st.RunID, st.Len(), s.pos.TVD)
	return st, nil
}
