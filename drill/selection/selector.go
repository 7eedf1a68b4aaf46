// Package selection scores catalogs of drill pipe and drill collars against a planned
// trajectory and ranks them. Lower scores are better.
package selection

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/mech"
)

// Buckler is a component that can be tested for buckling at a station.
type Buckler interface {
	Buckles(length, azimuth float64) bool
}

// Pipe is a drill-pipe candidate: it buckles and generates torque and drag per station pair.
type Pipe interface {
	Buckler
	Torque(seg mech.Segment) float64
	Drag(seg mech.Segment) float64
}

// Collar is a drill-collar candidate.
type Collar interface {
	Buckler
}

// Candidate is one catalog entry scored against a trajectory.
type Candidate struct {
	Index     int // position in the input catalog
	Component Buckler
	Torques   []float64 // per station; nil for collars
	Drags     []float64 // per station; nil for collars
	Buckles   []bool    // per station
	Score     float64
}

// BuckleCount returns the number of stations at which the candidate buckles.
func (c *Candidate) BuckleCount() int {
	n := 0
	for _, b := range c.Buckles {
		if b {
			n++
		}
	}
	return n
}

// CandidateSet is an immutable ranking of catalog components for one trajectory.
type CandidateSet struct {
	kind       mech.Kind
	ranked     []*Candidate
	catalogLen int
	failedOpen bool
}

// Optimum summarizes a CandidateSet.
type Optimum struct {
	BestScore    float64
	WorstScore   float64
	AverageScore float64
	Best         []*Candidate // ascending score
	Worst        []*Candidate // ascending score
}

// NewPipeSelection scores drill pipe against traj with torque, drag and buckling.
func NewPipeSelection(pipes []Pipe, traj *drill.Trajectory, cfg drill.SelectionConfig) (*CandidateSet, error) {
	if err := validateInputs(len(pipes), traj); err != nil {
		return nil, err
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	all := make([]*Candidate, len(pipes))
	forEach(len(pipes), cfg.Workers, func(i int) {
		all[i] = scorePipeStations(i, pipes[i], traj, cfg.PipeBucklingLength)
	})

	kept, failedOpen := dropBuckling(all)
	rankPipes(kept, cfg.Weights)
	return newCandidateSet(mech.KindPipe, kept, len(pipes), failedOpen), nil
}

// NewCollarSelection scores drill collars against traj by buckling incidence only.
func NewCollarSelection(collars []Collar, traj *drill.Trajectory, cfg drill.SelectionConfig) (*CandidateSet, error) {
	if err := validateInputs(len(collars), traj); err != nil {
		return nil, err
	}
	all := make([]*Candidate, len(collars))
	forEach(len(collars), cfg.Workers, func(i int) {
		all[i] = scoreCollarStations(i, collars[i], traj, cfg.CollarBucklingLength)
	})

	kept, failedOpen := dropBuckling(all)
	for _, c := range kept {
		c.Score = float64(c.BuckleCount())
	}
	return newCandidateSet(mech.KindCollar, kept, len(collars), failedOpen), nil
}

func validateInputs(n int, traj *drill.Trajectory) error {
	if n == 0 {
		return drill.ErrEmptyCandidateSet
	}
	if traj.Len() == 0 {
		return fmt.Errorf("%w: trajectory has no stations", drill.ErrInvalidGeometry)
	}
	return nil
}

// forEach runs fn for 0..n-1 on at most workers goroutines; workers <= 0 or > n runs every
// index at once. Each index runs exactly once.
func forEach(n, workers int, fn func(i int)) {
	var g errgroup.Group
	if workers > 0 && workers < n {
		g.SetLimit(workers)
	}
	for i := 0; i < n; i++ {
		i := i // per-iteration copy; go 1.21 loop variables are shared across iterations
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// scorePipeStations walks the stations in depth order. Station 0 pairs with itself so every
// station carries a value.
func scorePipeStations(idx int, p Pipe, traj *drill.Trajectory, length float64) *Candidate {
	n := traj.Len()
	c := &Candidate{
		Index:     idx,
		Component: p,
		Torques:   make([]float64, n),
		Drags:     make([]float64, n),
		Buckles:   make([]bool, n),
	}
	prev := traj.Stations[0]
	for i, cur := range traj.Stations {
		seg := mech.SegmentBetween(prev, cur)
		c.Torques[i] = p.Torque(seg)
		c.Drags[i] = p.Drag(seg)
		c.Buckles[i] = p.Buckles(length, cur.Azimuth)
		prev = cur
	}
	return c
}

func scoreCollarStations(idx int, b Collar, traj *drill.Trajectory, length float64) *Candidate {
	c := &Candidate{Index: idx, Component: b, Buckles: make([]bool, traj.Len())}
	for i, s := range traj.Stations {
		c.Buckles[i] = b.Buckles(length, s.Azimuth)
	}
	return c
}

// dropBuckling removes candidates that buckle anywhere. When every candidate buckles, the
// full list is returned and failedOpen is true.
func dropBuckling(all []*Candidate) (kept []*Candidate, failedOpen bool) {
	for _, c := range all {
		if c.BuckleCount() == 0 {
			kept = append(kept, c)
		} else {
			logrus.Debugf("selection: candidate %d buckles at %d stations, excluded", c.Index, c.BuckleCount())
		}
	}
	if len(kept) == 0 {
		logrus.Warnf("selection: all %d candidates buckle; ranking the full catalog", len(all))
		return all, true
	}
	return kept, false
}

// rankPipes scores every candidate: per station, the mean of the weighted normalized drag,
// torque and buckle terms; then the mean across stations. Torque and drag are normalized by
// the maximum over all kept candidates unless that maximum is zero, in which case raw
// values are used unweighted.
func rankPipes(cands []*Candidate, w drill.ScoreWeights) {
	maxTorque, maxDrag := 0.0, 0.0
	for _, c := range cands {
		maxTorque = max(maxTorque, floats.Max(c.Torques))
		maxDrag = max(maxDrag, floats.Max(c.Drags))
	}
	sum := w.Sum()

	for _, c := range cands {
		perStation := make([]float64, len(c.Buckles))
		for i := range c.Buckles {
			torque := c.Torques[i]
			if maxTorque > 0 {
				torque = torque / maxTorque * w.Torque / sum
			}
			drag := c.Drags[i]
			if maxDrag > 0 {
				drag = drag / maxDrag * w.Drag / sum
			}
			buckle := 0.0
			if c.Buckles[i] {
				buckle = w.Buckling / sum
			}
			perStation[i] = (drag + torque + buckle) / 3
		}
		c.Score = stat.Mean(perStation, nil)
	}
}

func newCandidateSet(kind mech.Kind, cands []*Candidate, catalogLen int, failedOpen bool) *CandidateSet {
	ranked := make([]*Candidate, len(cands))
	copy(ranked, cands)
	// input is in catalog order, so a stable sort breaks ties by catalog position
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score < ranked[j].Score })
	return &CandidateSet{kind: kind, ranked: ranked, catalogLen: catalogLen, failedOpen: failedOpen}
}

// Kind returns the component family that was ranked.
func (s *CandidateSet) Kind() mech.Kind { return s.kind }

// Len returns the number of ranked candidates.
func (s *CandidateSet) Len() int { return len(s.ranked) }

// CatalogLen returns the size of the catalog before buckling exclusion.
func (s *CandidateSet) CatalogLen() int { return s.catalogLen }

// FailedOpen reports whether every candidate buckled and the full catalog was kept.
func (s *CandidateSet) FailedOpen() bool { return s.failedOpen }

// Ranked returns the candidates in ascending score order.
func (s *CandidateSet) Ranked() []*Candidate {
	out := make([]*Candidate, len(s.ranked))
	copy(out, s.ranked)
	return out
}

// GetOptimum returns the summary scores and the k best and k worst candidates, each in
// ascending score order. k at or above the set size returns every candidate; k <= 0
// returns empty lists.
func (s *CandidateSet) GetOptimum(k int) Optimum {
	n := len(s.ranked)
	scores := make([]float64, n)
	for i, c := range s.ranked {
		scores[i] = c.Score
	}
	k = max(0, min(k, n))
	return Optimum{
		BestScore:    s.ranked[0].Score,
		WorstScore:   s.ranked[n-1].Score,
		AverageScore: stat.Mean(scores, nil),
		Best:         append([]*Candidate(nil), s.ranked[:k]...),
		Worst:        append([]*Candidate(nil), s.ranked[n-k:]...),
	}
}
