package mech

// DrillCollar is a heavy, stiff string component placed above the bit.
type DrillCollar struct {
	Body
}

// NewDrillCollar validates the body and wraps it as a collar.
func NewDrillCollar(body Body) (*DrillCollar, error) {
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &DrillCollar{Body: body}, nil
}

// Kind implements Component.
func (*DrillCollar) Kind() Kind { return KindCollar }
