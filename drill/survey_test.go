package drill

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAzimuthInclination_KnownDirections(t *testing.T) {
	tests := []struct {
		name    string
		p       Point3D
		wantAz  float64
		wantInc float64
	}{
		{"straight down", NewPoint3D(0, 0, 100), 0, 0},
		{"due north horizontal", NewPoint3D(0, 100, 0), 0, math.Pi / 2},
		{"due east horizontal", NewPoint3D(100, 0, 0), math.Pi / 2, math.Pi / 2},
		{"due west horizontal", NewPoint3D(-100, 0, 0), -math.Pi / 2, math.Pi / 2},
		{"45 degrees north-east", NewPoint3D(100, 100, math.Sqrt2*100), math.Pi / 4, math.Pi / 4},
		{"origin", NewPoint3D(0, 0, 0), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			az, inc := AzimuthInclination(tt.p)
			assert.InDelta(t, tt.wantAz, az, 1e-12)
			assert.InDelta(t, tt.wantInc, inc, 1e-12)
		})
	}
}

func TestAzimuthInclination_RangeForArbitraryPoints(t *testing.T) {
	// GIVEN random points in every octant, including negative TVD
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := NewPoint3D(rng.NormFloat64()*1e3, rng.NormFloat64()*1e3, rng.NormFloat64()*1e3)

		// WHEN angles are computed
		az, inc := AzimuthInclination(p)

		// THEN inclination is in [0, π] and azimuth in [-π, π]
		if inc < 0 || inc > math.Pi {
			t.Fatalf("inclination %v out of [0, π] for %+v", inc, p)
		}
		if az < -math.Pi || az > math.Pi {
			t.Fatalf("azimuth %v out of [-π, π] for %+v", az, p)
		}
	}
}

func TestMeasuredDepth_IsDistanceFromOrigin(t *testing.T) {
	assert.InDelta(t, 5.0, MeasuredDepth(NewPoint3D(3, 4, 0)), 1e-12)
	assert.InDelta(t, 13.0, MeasuredDepth(NewPoint3D(3, 4, 12)), 1e-12)
}

func TestDoglegSeverity_ZeroMDIntervalIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		md := rng.Float64() * 5000
		got := DoglegSeverity(md, md, rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi, rng.Float64()*math.Pi, rng.Float64()*math.Pi)
		if got != 0 {
			t.Fatalf("DoglegSeverity(md=%v, md) = %v, want 0", md, got)
		}
	}
}

func TestDoglegSeverity_NinetyDegreeBuildOver100(t *testing.T) {
	// vertical to horizontal over 100 units of MD
	got := DoglegSeverity(0, 100, 0, 0, 0, math.Pi/2)
	assert.InDelta(t, math.Pi/2, got, 1e-12)
}

func TestDoglegSeverity_ScalesInverselyWithCourseLength(t *testing.T) {
	short := DoglegSeverity(0, 50, 0, 0.2, 0.3, 0.4)
	long := DoglegSeverity(0, 100, 0, 0.2, 0.3, 0.4)
	assert.InDelta(t, 2*long, short, 1e-12)
}

func TestDoglegSeverity_IdenticalDirectionsDoNotProduceNaN(t *testing.T) {
	// cos·cos + sin·sin·cos(0) can round above 1
	got := DoglegSeverity(0, 10, 1.1, 1.1, 0.7, 0.7)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 0, got, 1e-6)
}

func TestSurvey_AbsoluteConvention(t *testing.T) {
	points := []Point3D{NewPoint3D(0, 0, 0), NewPoint3D(0, 0, 10), NewPoint3D(3, 4, 20)}
	stations := Survey(points, ConventionAbsolute)
	require.Len(t, stations, 3)

	assert.Equal(t, 0.0, stations[0].MeasuredDepth)
	assert.Equal(t, 0.0, stations[0].DLS)
	assert.InDelta(t, 10.0, stations[1].MeasuredDepth, 1e-12)
	assert.InDelta(t, math.Sqrt(9+16+400), stations[2].MeasuredDepth, 1e-12)

	az, inc := AzimuthInclination(points[2])
	assert.Equal(t, az, stations[2].Azimuth)
	assert.Equal(t, inc, stations[2].Inclination)
	wantDLS := DoglegSeverity(stations[1].MeasuredDepth, stations[2].MeasuredDepth, stations[1].Azimuth, az, stations[1].Inclination, inc)
	assert.Equal(t, wantDLS, stations[2].DLS)
}

func TestSurvey_DeltaConventionUsesCourseVectors(t *testing.T) {
	// GIVEN a path that drops 10 then steps 10 east at constant depth
	points := []Point3D{NewPoint3D(5, 5, 0), NewPoint3D(5, 5, 10), NewPoint3D(15, 5, 10)}

	// WHEN surveyed with the delta convention
	stations := Survey(points, ConventionDelta)

	// THEN MD is cumulative course length and angles describe each course
	assert.InDelta(t, 0, stations[0].MeasuredDepth, 1e-12)
	assert.InDelta(t, 10, stations[1].MeasuredDepth, 1e-12)
	assert.InDelta(t, 20, stations[2].MeasuredDepth, 1e-12)
	assert.InDelta(t, 0, stations[1].Inclination, 1e-12)
	assert.InDelta(t, math.Pi/2, stations[2].Inclination, 1e-12)
	assert.InDelta(t, math.Pi/2, stations[2].Azimuth, 1e-12)
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("")
	require.NoError(t, err)
	assert.Equal(t, ConventionAbsolute, c)

	c, err = ParseConvention("delta")
	require.NoError(t, err)
	assert.Equal(t, ConventionDelta, c)

	_, err = ParseConvention("minimum-curvature")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
