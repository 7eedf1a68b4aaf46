package drill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellsim/wellsim/drill/internal/testutil"
)

func TestParseMethod_Aliases(t *testing.T) {
	tests := map[string]Method{
		"":                    MethodPCHIP,
		"pchip":               MethodPCHIP,
		"PchipInterpolator":   MethodPCHIP,
		"akima":               MethodAkima,
		"Akima1DInterpolator": MethodAkima,
	}
	for name, want := range tests {
		got, err := ParseMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseMethod("CubicSpline")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInterpolate_TwoPointsIsLinear(t *testing.T) {
	for _, m := range []Method{MethodAkima, MethodPCHIP} {
		t.Run(string(m), func(t *testing.T) {
			control := []Point3D{NewPoint3D(0, 0, 500), NewPoint3D(100, 100, 1000)}
			got, err := Interpolate(control, 10, m)
			require.NoError(t, err)
			require.Len(t, got, 51)
			assert.Equal(t, control[0].TVD, got[0].TVD)
			assert.Equal(t, control[1], got[len(got)-1])
			// halfway down, halfway across
			assert.InDelta(t, 50, got[25].East, 1e-9)
			assert.InDelta(t, 50, got[25].North, 1e-9)
		})
	}
}

func TestDepthGrid_ThinIntervalKeepsBothEnds(t *testing.T) {
	// GIVEN an interval whose depth span underflows when divided by the spacing
	to := math.SmallestNonzeroFloat64

	// WHEN the grid is built
	got := depthGrid(0, to, 10)

	// THEN the start depth precedes the end depth
	assert.Equal(t, []float64{0, to}, got)
	assert.Equal(t, []float64{0, 10, 20, 25}, depthGrid(0, 25, 10))
	assert.Equal(t, []float64{7}, depthGrid(7, 7, 10))
}

func TestInterpolate_PassesThroughControlPoints(t *testing.T) {
	control := []Point3D{
		NewPoint3D(0, 0, 800),
		NewPoint3D(238.21, 137.53, 1160),
		NewPoint3D(337.47, 194.84, 1220),
		NewPoint3D(759.59, 438.55, 1330),
		NewPoint3D(1284.59, 741.66, 1680),
	}
	for _, m := range []Method{MethodAkima, MethodPCHIP} {
		t.Run(string(m), func(t *testing.T) {
			got, err := Interpolate(control, 10, m)
			require.NoError(t, err)

			depths := make([]float64, len(got))
			for i, p := range got {
				depths[i] = p.TVD
			}
			testutil.AssertNonDecreasing(t, "tvd", depths)

			// control depths are multiples of the spacing from the KOP, so they are grid points
			for _, c := range control {
				for _, p := range got {
					if p.TVD == c.TVD {
						assert.InDelta(t, c.East, p.East, 1e-6)
						assert.InDelta(t, c.North, p.North, 1e-6)
					}
				}
			}
		})
	}
}

func TestInterpolate_PCHIPStaysWithinMonotoneData(t *testing.T) {
	// monotone easting data must not overshoot with the Hermite variant
	control := []Point3D{NewPoint3D(0, 0, 0), NewPoint3D(10, 0, 100), NewPoint3D(11, 0, 200), NewPoint3D(100, 0, 300)}
	got, err := Interpolate(control, 5, MethodPCHIP)
	require.NoError(t, err)
	prev := got[0].East
	for _, p := range got {
		assert.GreaterOrEqual(t, p.East, prev-1e-9)
		assert.LessOrEqual(t, p.East, 100+1e-9)
		prev = p.East
	}
}

func TestInterpolate_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name    string
		control []Point3D
		spacing float64
	}{
		{"single point", []Point3D{NewPoint3D(0, 0, 0)}, 10},
		{"duplicate depth", []Point3D{NewPoint3D(0, 0, 0), NewPoint3D(1, 1, 0)}, 10},
		{"descending depth", []Point3D{NewPoint3D(0, 0, 100), NewPoint3D(1, 1, 50)}, 10},
		{"zero spacing", []Point3D{NewPoint3D(0, 0, 0), NewPoint3D(1, 1, 50)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Interpolate(tt.control, tt.spacing, MethodPCHIP)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestVerticalSection(t *testing.T) {
	got := VerticalSection(NewPoint3D(5, 7, 0), 500, 10)
	require.Len(t, got, 50)
	assert.Equal(t, NewPoint3D(5, 7, 0), got[0])
	assert.Equal(t, NewPoint3D(5, 7, 490), got[49])

	assert.Empty(t, VerticalSection(NewPoint3D(0, 0, 0), 0, 10))
}

func TestSortByDepth_StableAndCopying(t *testing.T) {
	in := []Point3D{NewPoint3D(1, 0, 30), NewPoint3D(2, 0, 10), NewPoint3D(3, 0, 10)}
	got := SortByDepth(in)
	assert.Equal(t, []Point3D{NewPoint3D(2, 0, 10), NewPoint3D(3, 0, 10), NewPoint3D(1, 0, 30)}, got)
	assert.Equal(t, 30.0, in[0].TVD, "input must be untouched")
}
