// Package bit predicts bit penetration and torque from drilling parameters.
package bit

// Input holds the drilling parameters at one simulation step.
type Input struct {
	FormationAggressiveness float64 // torque/WOB ratio of the formation
	BitAggressiveness       float64 // 0.7 (unaggressive) to 1.3 (aggressive)
	WOB                     float64 // lbf
	RPM                     float64 // rev/min
	Efficiency              float64 // drilling efficiency, usually 0.3 to 0.4
	Diameter                float64 // in
	CCS                     float64 // psi
	SideForce               float64 // side cutting aggressiveness scale of the string
	SideCuttingFactor       float64 // side cutting factor of the bit
}

// Response is the bit's reaction to an Input.
type Response struct {
	ROPAxial   float64 // ft/hr
	ROPLateral float64 // ft/hr
	TOB        float64 // ft-lbf
}

// Model is a bit response model.
type Model interface {
	Respond(in Input) Response
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(in Input) Response

// Respond calls f(in).
func (f ModelFunc) Respond(in Input) Response { return f(in) }

// Drillbotics is the Drillbotics contest bit model: axial ROP from Teale's mechanical
// specific energy, torque from Pessier and Fear (SPE 24584).
type Drillbotics struct{}

// Respond implements Model. A zero Diameter·CCS product yields zero rates instead of
// infinities.
func (Drillbotics) Respond(in Input) Response {
	mu := in.FormationAggressiveness * in.BitAggressiveness
	out := Response{TOB: in.Diameter * mu * in.WOB / 36}
	dc := in.Diameter * in.CCS
	if dc == 0 {
		return out
	}
	out.ROPAxial = 13.33 * in.RPM * mu * in.WOB * in.Efficiency / dc
	out.ROPLateral = in.SideCuttingFactor * in.SideForce * in.RPM / dc
	return out
}
