package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wellsim/wellsim/drill"
)

// Scenario is a well scenario file. Zero-valued numeric fields fall back to the drill
// package defaults.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Scenario struct {
	Surface           drill.Point3D   `yaml:"surface"`
	Targets           []drill.Point3D `yaml:"targets"`
	KOP               float64         `yaml:"kop"`
	AutoKOP           bool            `yaml:"auto_kop"`
	MinKOP            float64         `yaml:"min_kop"`
	KOPFormationValue float64         `yaml:"kop_formation_value"`
	StationDelta      float64         `yaml:"station_delta"`
	Method            string          `yaml:"method"`
	Convention        string          `yaml:"convention"`
	Formation         []drill.Sample  `yaml:"formation"`
	CCS               []drill.Sample  `yaml:"ccs"`

	Fluid     FluidSection     `yaml:"fluid"`
	PipeLoads PipeLoadSection  `yaml:"pipe_loads"`
	Selection SelectionSection `yaml:"selection"`
	Bit       BitSection       `yaml:"bit"`
	RSS       RSSSection       `yaml:"rss"`
}

type FluidSection struct {
	YoungsModulus  float64 `yaml:"youngs_modulus"`
	HoleDiameter   float64 `yaml:"hole_diameter"`
	InnerMudWeight float64 `yaml:"inner_mud_weight"`
	OuterMudWeight float64 `yaml:"outer_mud_weight"`
}

type PipeLoadSection struct {
	FrictionCoefficient   float64 `yaml:"friction_coefficient"`
	StringForce           float64 `yaml:"string_force"`
	InternalFluidPressure float64 `yaml:"internal_fluid_pressure"`
	ExternalFluidPressure float64 `yaml:"external_fluid_pressure"`
	BuoyancyFactor        float64 `yaml:"buoyancy_factor"`
}

type SelectionSection struct {
	TorqueWeight         float64 `yaml:"torque_weight"`
	DragWeight           float64 `yaml:"drag_weight"`
	BucklingWeight       float64 `yaml:"buckling_weight"`
	PipeBucklingLength   float64 `yaml:"pipe_buckling_length"`
	CollarBucklingLength float64 `yaml:"collar_buckling_length"`
	Workers              int     `yaml:"workers"`
}

type BitSection struct {
	Aggressiveness    float64 `yaml:"aggressiveness"`
	Efficiency        float64 `yaml:"efficiency"`
	Diameter          float64 `yaml:"diameter"`
	SideCuttingFactor float64 `yaml:"side_cutting_factor"`
	NominalRPM        float64 `yaml:"nominal_rpm"`
}

type RSSSection struct {
	MinPadForce        float64   `yaml:"min_pad_force"`
	MaxPadForce        float64   `yaml:"max_pad_force"`
	InitialPadGuess    []float64 `yaml:"initial_pad_guess"`
	TimeDelta          float64   `yaml:"time_delta"`
	StartWOB           float64   `yaml:"start_wob"`
	EndWOB             float64   `yaml:"end_wob"`
	MinRPMFactor       float64   `yaml:"min_rpm_factor"`
	MaxRPMFactor       float64   `yaml:"max_rpm_factor"`
	HoldOnSolveFailure bool      `yaml:"hold_on_solve_failure"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// orDefault returns v unless it is zero.
func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Plan builds the well plan, applying KOP suggestion when auto_kop is set.
func (s *Scenario) Plan() (drill.WellPlan, error) {
	method, err := drill.ParseMethod(s.Method)
	if err != nil {
		return drill.WellPlan{}, err
	}
	convention, err := drill.ParseConvention(s.Convention)
	if err != nil {
		return drill.WellPlan{}, err
	}
	def := drill.DefaultWellPlan()
	plan := drill.WellPlan{
		Surface:           s.Surface,
		Targets:           s.Targets,
		KOP:               s.KOP,
		StationDelta:      orDefault(s.StationDelta, def.StationDelta),
		Method:            method,
		Convention:        convention,
		MinKOP:            s.MinKOP,
		KOPFormationValue: orDefault(s.KOPFormationValue, def.KOPFormationValue),
		Formation:         s.Formation,
		CCS:               s.CCS,
	}
	if s.AutoKOP {
		plan = plan.SuggestKOP()
	}
	return plan, plan.Validate()
}

func (s *Scenario) FluidConfig() drill.FluidConfig {
	d := drill.DefaultFluidConfig()
	f := s.Fluid
	return drill.NewFluidConfig(
		orDefault(f.YoungsModulus, d.YoungsModulus),
		orDefault(f.HoleDiameter, d.HoleDiameter),
		orDefault(f.InnerMudWeight, d.InnerMudWeight),
		orDefault(f.OuterMudWeight, d.OuterMudWeight),
	)
}

func (s *Scenario) PipeLoadConfig() drill.PipeLoadConfig {
	d := drill.DefaultPipeLoadConfig()
	l := s.PipeLoads
	return drill.NewPipeLoadConfig(
		orDefault(l.FrictionCoefficient, d.FrictionCoefficient),
		orDefault(l.StringForce, d.StringForce),
		orDefault(l.InternalFluidPressure, d.InternalFluidPressure),
		orDefault(l.ExternalFluidPressure, d.ExternalFluidPressure),
		orDefault(l.BuoyancyFactor, d.BuoyancyFactor),
	)
}

// SelectionConfig uses the default weights only when all three are zero, so a single
// weight can be switched off explicitly.
func (s *Scenario) SelectionConfig() drill.SelectionConfig {
	cfg := drill.DefaultSelectionConfig()
	sel := s.Selection
	if sel.TorqueWeight != 0 || sel.DragWeight != 0 || sel.BucklingWeight != 0 {
		cfg.Weights = drill.NewScoreWeights(sel.TorqueWeight, sel.DragWeight, sel.BucklingWeight)
	}
	cfg.PipeBucklingLength = orDefault(sel.PipeBucklingLength, cfg.PipeBucklingLength)
	cfg.CollarBucklingLength = orDefault(sel.CollarBucklingLength, cfg.CollarBucklingLength)
	cfg.Workers = sel.Workers
	return cfg
}

func (s *Scenario) BitConfig() drill.BitConfig {
	d := drill.DefaultBitConfig()
	b := s.Bit
	return drill.NewBitConfig(
		orDefault(b.Aggressiveness, d.Aggressiveness),
		orDefault(b.Efficiency, d.Efficiency),
		orDefault(b.Diameter, d.Diameter),
		orDefault(b.SideCuttingFactor, d.SideCuttingFactor),
		orDefault(b.NominalRPM, d.NominalRPM),
	)
}

func (s *Scenario) RSSConfig() (drill.RSSConfig, error) {
	cfg := drill.DefaultRSSConfig()
	r := s.RSS
	cfg.MinPadForce = orDefault(r.MinPadForce, cfg.MinPadForce)
	cfg.MaxPadForce = orDefault(r.MaxPadForce, cfg.MaxPadForce)
	cfg.TimeDelta = orDefault(r.TimeDelta, cfg.TimeDelta)
	cfg.StartWOB = orDefault(r.StartWOB, cfg.StartWOB)
	cfg.EndWOB = orDefault(r.EndWOB, cfg.EndWOB)
	cfg.MinRPMFactor = orDefault(r.MinRPMFactor, cfg.MinRPMFactor)
	cfg.MaxRPMFactor = orDefault(r.MaxRPMFactor, cfg.MaxRPMFactor)
	cfg.HoldOnSolveFailure = r.HoldOnSolveFailure
	switch len(r.InitialPadGuess) {
	case 0:
	case 3:
		copy(cfg.InitialPadGuess[:], r.InitialPadGuess)
	default:
		return drill.RSSConfig{}, fmt.Errorf("%w: initial_pad_guess needs 3 values, got %d", drill.ErrInvalidConfig, len(r.InitialPadGuess))
	}
	return cfg, cfg.Validate()
}
