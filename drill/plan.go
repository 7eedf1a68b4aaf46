package drill

import (
	"fmt"
	"math"
)

// WellPlan describes a well from its surface location to an ordered set of targets.
// It is a value: operations return new plans or freshly computed tables and never cache a
// trajectory.
type WellPlan struct {
	Surface      Point3D
	Targets      []Point3D
	KOP          float64 // kick-off depth; 0 with SuggestKOP picks one from Formation
	StationDelta float64 // depth spacing between survey stations
	Method       Method
	Convention   SurveyConvention

	MinKOP            float64  // shallowest depth SuggestKOP may choose
	KOPFormationValue float64  // least formation aggressiveness acceptable for kick-off
	Formation         []Sample // depth → formation aggressiveness
	CCS               []Sample // depth → confined compressive strength (psi)
}

// DefaultWellPlan returns a plan with the conventional planning defaults and no targets.
func DefaultWellPlan() WellPlan {
	return WellPlan{
		StationDelta:      10,
		Method:            MethodPCHIP,
		Convention:        ConventionAbsolute,
		KOPFormationValue: 0.6,
	}
}

// Trajectory is the materialized survey of a plan, surface first.
type Trajectory struct {
	Stations []SurveyStation
}

// NewTrajectory wraps already-computed stations.
func NewTrajectory(stations []SurveyStation) *Trajectory {
	return &Trajectory{Stations: stations}
}

// Len returns the number of stations.
func (t *Trajectory) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Stations)
}

// Positions returns the station coordinates in order.
func (t *Trajectory) Positions() []Point3D {
	out := make([]Point3D, len(t.Stations))
	for i, s := range t.Stations {
		out[i] = s.Position
	}
	return out
}

// MaxDLS returns the station with the greatest dogleg severity and its index.
// The first station wins ties. An empty trajectory returns index -1.
func (t *Trajectory) MaxDLS() (SurveyStation, int) {
	best := -1
	for i, s := range t.Stations {
		if best < 0 || s.DLS > t.Stations[best].DLS {
			best = i
		}
	}
	if best < 0 {
		return SurveyStation{}, -1
	}
	return t.Stations[best], best
}

// FirstTarget returns the shallowest target.
func (p WellPlan) FirstTarget() (Point3D, bool) {
	if len(p.Targets) == 0 {
		return Point3D{}, false
	}
	return SortByDepth(p.Targets)[0], true
}

// Validate checks that the plan can produce a trajectory.
func (p WellPlan) Validate() error {
	if len(p.Targets) == 0 {
		return fmt.Errorf("%w: at least one target required", ErrInvalidGeometry)
	}
	if !(p.StationDelta > 0) || math.IsInf(p.StationDelta, 0) {
		return fmt.Errorf("%w: station delta must be positive, got %v", ErrInvalidGeometry, p.StationDelta)
	}
	if _, err := p.Method.predictor(); err != nil {
		return err
	}
	if !IsValidConvention(string(p.Convention)) {
		return fmt.Errorf("%w: unknown survey convention %q", ErrInvalidConfig, p.Convention)
	}
	if !p.Surface.IsFinite() {
		return fmt.Errorf("%w: surface %+v is not finite", ErrInvalidGeometry, p.Surface)
	}
	for i, t := range p.Targets {
		if !t.IsFinite() {
			return fmt.Errorf("%w: target %d has non-finite coordinates", ErrInvalidGeometry, i)
		}
	}
	if p.KOP < p.Surface.TVD {
		return fmt.Errorf("%w: KOP %v lies above surface depth %v", ErrInvalidGeometry, p.KOP, p.Surface.TVD)
	}
	first, _ := p.FirstTarget()
	if p.KOP > first.TVD {
		return fmt.Errorf("%w: KOP %v lies below first target depth %v", ErrInvalidGeometry, p.KOP, first.TVD)
	}
	return nil
}

// SuggestKOP returns a copy of the plan whose KOP is the first formation sample, in depth
// order, that is at least MinKOP deep, at least KOPFormationValue aggressive, and no deeper
// than the first target. Without a match the KOP is unchanged.
func (p WellPlan) SuggestKOP() WellPlan {
	first, ok := p.FirstTarget()
	if !ok || len(p.Formation) == 0 {
		return p
	}
	table, err := NewStepTable(p.Formation)
	if err != nil {
		return p
	}
	for _, s := range table.Samples() {
		if s.Depth >= p.MinKOP && s.Value >= p.KOPFormationValue && s.Depth <= first.TVD {
			p.KOP = s.Depth
			return p
		}
	}
	return p
}

// nudgeEpsilon is the float64 machine epsilon.
const nudgeEpsilon = 2.220446049250313e-16

// TargetTable returns the targets in ascending depth with the kick-off nudge applied: any
// target at or above the KOP moves one relative machine epsilon below the previous control
// point, so interpolation never divides by a zero depth interval.
func (p WellPlan) TargetTable() []Point3D {
	targets := SortByDepth(p.Targets)
	kickoff := math.Max(p.KOP, p.Surface.TVD)
	prev := kickoff
	for i := range targets {
		if targets[i].TVD <= kickoff {
			targets[i].TVD = prev + math.Max(1, math.Abs(prev))*nudgeEpsilon
		}
		prev = targets[i].TVD
	}
	return targets
}

// Output materializes the trajectory and target table for the plan.
func (p WellPlan) Output() (*Trajectory, []Point3D, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	targets := p.TargetTable()

	kop := Point3D{East: p.Surface.East, North: p.Surface.North, TVD: p.KOP}
	control := append([]Point3D{kop}, targets...)
	curve, err := Interpolate(control, p.StationDelta, p.Method)
	if err != nil {
		return nil, nil, err
	}

	points := append(VerticalSection(p.Surface, kop.TVD, p.StationDelta), curve...)
	convention := p.Convention
	if convention == "" {
		convention = ConventionAbsolute
	}
	return NewTrajectory(Survey(points, convention)), targets, nil
}
