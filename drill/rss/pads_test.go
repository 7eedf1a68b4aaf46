package rss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellsim/wellsim/drill"
)

func TestPadOffset_EqualMagnitudesCancel(t *testing.T) {
	e, n := PadOffset([3]float64{12345, 12345, 12345})
	assert.Equal(t, 0.0, e)
	assert.Equal(t, 0.0, n)
}

func TestPadOffset_SinglePadPointsAlongItsAngle(t *testing.T) {
	e, n := PadOffset([3]float64{0, 2, 0})
	assert.InDelta(t, 2*math.Cos(2*math.Pi/3), e, 1e-12)
	assert.InDelta(t, 2*math.Sin(2*math.Pi/3), n, 1e-12)
}

func TestNewPadSolver_ClipsInitialGuessIntoBounds(t *testing.T) {
	// GIVEN the reference guess 50, which lies below the 10000 lower bound
	s := NewPadSolver(drill.DefaultRSSConfig())

	// THEN the solver starts from the lower bound instead
	assert.Equal(t, [3]float64{10000, 10000, 10000}, s.Guess())

	cfg := drill.DefaultRSSConfig()
	cfg.InitialPadGuess = [3]float64{20000, 90000, -5}
	assert.Equal(t, [3]float64{20000, 50000, 10000}, NewPadSolver(cfg).Guess())
}

func TestPadSolver_ReachesReachableTarget(t *testing.T) {
	s := NewPadSolver(drill.DefaultRSSConfig())
	tests := []struct {
		name string
		to   drill.Point3D
	}{
		{name: "east", to: drill.NewPoint3D(30, 0, 0)},
		{name: "north-east", to: drill.NewPoint3D(30, 40, 0)},
		{name: "south-west", to: drill.NewPoint3D(-120, -75, 0)},
		{name: "already there", to: drill.NewPoint3D(0, 0, 500)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// WHEN solving from the origin
			mags, err := s.Solve(drill.NewPoint3D(0, 0, 0), tc.to)
			require.NoError(t, err)

			// THEN the magnitudes are feasible and land on the target
			for _, m := range mags {
				assert.GreaterOrEqual(t, m, 10000.0)
				assert.LessOrEqual(t, m, 50000.0)
			}
			e, n := PadOffset(mags)
			assert.InDelta(t, tc.to.East, e, 1e-2)
			assert.InDelta(t, tc.to.North, n, 1e-2)
		})
	}
}

func TestPadSolver_UnreachableTargetStaysInBounds(t *testing.T) {
	// GIVEN a target far beyond the largest possible offset
	s := NewPadSolver(drill.DefaultRSSConfig())

	mags, err := s.Solve(drill.NewPoint3D(0, 0, 0), drill.NewPoint3D(1e6, 0, 0))
	require.NoError(t, err)

	// THEN the best feasible answer pushes the east pad to its maximum
	for _, m := range mags {
		assert.GreaterOrEqual(t, m, 10000.0)
		assert.LessOrEqual(t, m, 50000.0)
	}
	e, _ := PadOffset(mags)
	assert.InDelta(t, 40000, e, 1)
}

func TestPadSolver_DegenerateBounds(t *testing.T) {
	cfg := drill.DefaultRSSConfig()
	cfg.MinPadForce, cfg.MaxPadForce = 20000, 20000
	mags, err := NewPadSolver(cfg).Solve(drill.NewPoint3D(0, 0, 0), drill.NewPoint3D(10, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, [3]float64{20000, 20000, 20000}, mags)
}

func TestPadSolver_OverflowingObjectiveIsNonConvergence(t *testing.T) {
	// GIVEN a target whose squared miss distance overflows float64
	s := NewPadSolver(drill.DefaultRSSConfig())

	// WHEN solving
	_, err := s.Solve(drill.NewPoint3D(0, 0, 0), drill.NewPoint3D(0, -1e200, 10))

	// THEN the optimizer failure is surfaced
	assert.ErrorIs(t, err, drill.ErrOptimizerNonConvergence)
}
