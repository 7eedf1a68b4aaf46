package drill

import (
	"fmt"
	"math"
	"sort"
)

// Sample is a (depth, value) pair from a depth-indexed property table.
type Sample struct {
	Depth float64 `json:"depth" yaml:"depth"`
	Value float64 `json:"value" yaml:"value"`
}

// StepTable is a piecewise-constant function of depth.
// At(depth) returns the value of the last sample at or before depth. Depths past the final
// sample keep the final value; depths before the first sample take the first value.
// A StepTable is immutable and safe for concurrent reads.
type StepTable struct {
	depths []float64
	values []float64
}

// NewStepTable builds a StepTable from samples in any order. Samples sharing a depth keep
// their input order, so the later one wins lookups at that depth.
func NewStepTable(samples []Sample) (*StepTable, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: step table needs at least one sample", ErrInvalidConfig)
	}
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Depth < sorted[j].Depth })

	t := &StepTable{
		depths: make([]float64, len(sorted)),
		values: make([]float64, len(sorted)),
	}
	for i, s := range sorted {
		if math.IsNaN(s.Depth) || math.IsNaN(s.Value) {
			return nil, fmt.Errorf("%w: step table sample %d is NaN", ErrInvalidConfig, i)
		}
		t.depths[i] = s.Depth
		t.values[i] = s.Value
	}
	return t, nil
}

// MustStepTable is NewStepTable for literal tables known to be valid.
func MustStepTable(samples ...Sample) *StepTable {
	t, err := NewStepTable(samples)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the value in effect at depth.
func (t *StepTable) At(depth float64) float64 {
	// first index whose depth is strictly deeper than the query
	i := sort.Search(len(t.depths), func(i int) bool { return t.depths[i] > depth })
	if i == 0 {
		return t.values[0]
	}
	return t.values[i-1]
}

// Len returns the number of samples.
func (t *StepTable) Len() int { return len(t.depths) }

// Samples returns a depth-ordered copy of the table.
func (t *StepTable) Samples() []Sample {
	out := make([]Sample, len(t.depths))
	for i := range t.depths {
		out[i] = Sample{Depth: t.depths[i], Value: t.values[i]}
	}
	return out
}

// LinearRamp builds a StepTable stepping linearly from start to end across
// [fromDepth, toDepth] at the given depth spacing. The final sample sits at toDepth with
// value end.
func LinearRamp(start, end, fromDepth, toDepth, spacing float64) (*StepTable, error) {
	if spacing <= 0 || math.IsNaN(spacing) {
		return nil, fmt.Errorf("%w: ramp spacing must be positive, got %v", ErrInvalidConfig, spacing)
	}
	if toDepth < fromDepth {
		return nil, fmt.Errorf("%w: ramp ends at %v above its start %v", ErrInvalidConfig, toDepth, fromDepth)
	}
	steps := int(math.Floor((toDepth - fromDepth) / spacing))
	if steps < 1 {
		return NewStepTable([]Sample{{Depth: fromDepth, Value: start}, {Depth: toDepth, Value: end}})
	}
	delta := (end - start) / float64(steps)
	samples := make([]Sample, 0, steps+2)
	for i := 0; i < steps; i++ {
		samples = append(samples, Sample{Depth: fromDepth + float64(i)*spacing, Value: start + float64(i)*delta})
	}
	samples = append(samples, Sample{Depth: toDepth, Value: end})
	return NewStepTable(samples)
}
