package mech

import "github.com/wellsim/wellsim/drill"

// DrillPipe is a drill-pipe joint type. Torque, drag and side cutting are delegated to a
// FrictionModel so alternative empirical forms can be swapped in.
type DrillPipe struct {
	Body
	Loads    drill.PipeLoadConfig
	Friction FrictionModel
}

// NewDrillPipe validates the body and wraps it as pipe. A nil friction model selects SoftString.
func NewDrillPipe(body Body, loads drill.PipeLoadConfig, friction FrictionModel) (*DrillPipe, error) {
	if err := body.Validate(); err != nil {
		return nil, err
	}
	if friction == nil {
		friction = SoftString{}
	}
	return &DrillPipe{Body: body, Loads: loads, Friction: friction}, nil
}

// Kind implements Component.
func (*DrillPipe) Kind() Kind { return KindPipe }

// Torque returns the rotating torque generated across one station pair.
func (p *DrillPipe) Torque(seg Segment) float64 { return p.Friction.Torque(p, seg) }

// Drag returns the axial drag generated across one station pair.
func (p *DrillPipe) Drag(seg Segment) float64 { return p.Friction.Drag(p, seg) }

// SideCuttingFactor returns the side force scale this pipe transmits to the bit.
func (p *DrillPipe) SideCuttingFactor() float64 { return p.Friction.SideCuttingFactor(p) }
