package drill

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Method names a piecewise-cubic interpolation scheme used to build a trajectory.
type Method string

const (
	// MethodAkima is the shape-preserving local fit of Akima.
	MethodAkima Method = "akima"
	// MethodPCHIP is the monotone piecewise cubic Hermite fit (Fritsch-Butland slopes).
	MethodPCHIP Method = "pchip"
)

// methodAliases accepts the interpolator names used by planning spreadsheets.
var methodAliases = map[string]Method{
	"":                    MethodPCHIP,
	"akima":               MethodAkima,
	"Akima1DInterpolator": MethodAkima,
	"pchip":               MethodPCHIP,
	"PchipInterpolator":   MethodPCHIP,
}

// ParseMethod maps an interpolator name to a Method. Empty selects PCHIP.
func ParseMethod(name string) (Method, error) {
	m, ok := methodAliases[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown interpolator %q; valid: akima, pchip", ErrInvalidConfig, name)
	}
	return m, nil
}

func (m Method) predictor() (interp.FittablePredictor, error) {
	switch m {
	case MethodAkima:
		return &interp.AkimaSpline{}, nil
	case MethodPCHIP, "":
		return &interp.FritschButland{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown interpolator %q", ErrInvalidConfig, m)
	}
}

// SortByDepth returns a copy of points ordered by ascending TVD. Equal depths keep their
// input order.
func SortByDepth(points []Point3D) []Point3D {
	out := make([]Point3D, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TVD < out[j].TVD })
	return out
}

// Interpolate fits east(TVD) and north(TVD) through the control points and samples them
// every spacing units of depth, from the first control depth to the last. The last control
// point is always emitted exactly.
//
// Control points must already be in strictly ascending depth order.
func Interpolate(control []Point3D, spacing float64, method Method) ([]Point3D, error) {
	if len(control) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 control points, got %d", ErrInvalidGeometry, len(control))
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%w: station spacing must be positive, got %v", ErrInvalidGeometry, spacing)
	}

	depths := make([]float64, len(control))
	easts := make([]float64, len(control))
	norths := make([]float64, len(control))
	for i, p := range control {
		if i > 0 && !(p.TVD > control[i-1].TVD) {
			return nil, fmt.Errorf("%w: control depth %v does not increase past %v", ErrInvalidGeometry, p.TVD, control[i-1].TVD)
		}
		depths[i], easts[i], norths[i] = p.TVD, p.East, p.North
	}

	fx, err := method.predictor()
	if err != nil {
		return nil, err
	}
	fy, _ := method.predictor()
	if err := fx.Fit(depths, easts); err != nil {
		return nil, fmt.Errorf("%w: fitting east: %v", ErrInvalidGeometry, err)
	}
	if err := fy.Fit(depths, norths); err != nil {
		return nil, fmt.Errorf("%w: fitting north: %v", ErrInvalidGeometry, err)
	}

	grid := depthGrid(depths[0], depths[len(depths)-1], spacing)
	out := make([]Point3D, len(grid))
	for i, z := range grid {
		out[i] = Point3D{East: fx.Predict(z), North: fy.Predict(z), TVD: z}
	}
	last := control[len(control)-1]
	out[len(out)-1] = last
	return out, nil
}

// VerticalSection returns stations straight down from surface, spaced by spacing, stopping
// short of depth.
func VerticalSection(surface Point3D, depth, spacing float64) []Point3D {
	if !(spacing > 0) || depth <= surface.TVD {
		return nil
	}
	n := int(math.Ceil((depth - surface.TVD) / spacing))
	out := make([]Point3D, 0, n)
	for i := 0; i < n; i++ {
		z := surface.TVD + float64(i)*spacing
		if z >= depth {
			break
		}
		out = append(out, Point3D{East: surface.East, North: surface.North, TVD: z})
	}
	return out
}

// depthGrid returns from, from+spacing, ... strictly below to, then to itself. from is
// always kept when to lies below it, however thin the interval.
func depthGrid(from, to, spacing float64) []float64 {
	n := int(math.Ceil((to - from) / spacing))
	if n < 1 && to > from {
		n = 1
	}
	grid := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		z := from + float64(i)*spacing
		if z >= to {
			break
		}
		grid = append(grid, z)
	}
	return append(grid, to)
}
