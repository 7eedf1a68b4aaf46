package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTable_At(t *testing.T) {
	table := MustStepTable(
		Sample{Depth: 500, Value: 0.8},
		Sample{Depth: 0, Value: 0.6},
		Sample{Depth: 1200, Value: 1.1},
	)
	tests := []struct {
		name  string
		depth float64
		want  float64
	}{
		{"before first sample takes first value", -10, 0.6},
		{"exactly on first sample", 0, 0.6},
		{"between samples holds previous", 499.9, 0.6},
		{"exactly on a boundary switches", 500, 0.8},
		{"middle interval", 900, 0.8},
		{"last sample", 1200, 1.1},
		{"past the end keeps last", 1e6, 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.At(tt.depth))
		})
	}
}

func TestStepTable_DuplicateDepthLaterSampleWins(t *testing.T) {
	table := MustStepTable(Sample{Depth: 100, Value: 1}, Sample{Depth: 100, Value: 2})
	assert.Equal(t, 2.0, table.At(100))
}

func TestNewStepTable_EmptyIsRejected(t *testing.T) {
	_, err := NewStepTable(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStepTable_SamplesAreSortedCopies(t *testing.T) {
	input := []Sample{{Depth: 30, Value: 3}, {Depth: 10, Value: 1}}
	table := MustStepTable(input...)
	got := table.Samples()
	assert.Equal(t, []Sample{{Depth: 10, Value: 1}, {Depth: 30, Value: 3}}, got)

	got[0].Value = 99
	assert.Equal(t, 1.0, table.At(10), "mutating Samples() output must not alter the table")
	assert.Equal(t, 2, table.Len())
}

func TestLinearRamp_EndpointsAndMonotonicity(t *testing.T) {
	// GIVEN a ramp from 1000 to 80000 lbf over 0..1000 ft at 10 ft spacing
	ramp, err := LinearRamp(1000, 80000, 0, 1000, 10)
	require.NoError(t, err)

	// THEN the top, bottom and intermediate values follow the line
	assert.Equal(t, 1000.0, ramp.At(0))
	assert.Equal(t, 80000.0, ramp.At(1000))
	assert.Equal(t, 80000.0, ramp.At(5000))
	assert.InDelta(t, 1000+79000*0.5, ramp.At(500), 1e-9)
	assert.InDelta(t, 1000+79000*0.5, ramp.At(505), 1e-9, "values step, they do not blend")

	prev := ramp.At(0)
	for d := 0.0; d <= 1000; d += 3 {
		v := ramp.At(d)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestLinearRamp_ShortRangeStillHasBothEnds(t *testing.T) {
	ramp, err := LinearRamp(10, 20, 0, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ramp.At(0))
	assert.Equal(t, 20.0, ramp.At(5))
}

func TestLinearRamp_InvalidInputs(t *testing.T) {
	_, err := LinearRamp(0, 1, 0, 100, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = LinearRamp(0, 1, 100, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
