package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wellsim/wellsim/drill"
	"github.com/wellsim/wellsim/drill/mech"
	"github.com/wellsim/wellsim/drill/selection"
	"github.com/wellsim/wellsim/drill/trace"
)

// PlanSummary is the JSON summary printed after a trajectory.
type PlanSummary struct {
	Stations   int     `json:"stations"`
	KOP        float64 `json:"kop"`
	Method     string  `json:"method"`
	Convention string  `json:"convention"`
	FinalMD    float64 `json:"final_md"`
	FinalTVD   float64 `json:"final_tvd"`
	MaxDLS     float64 `json:"max_dls"`
	MaxDLSMD   float64 `json:"max_dls_md"`
}

// SetSummary is the JSON summary of one ranked catalog.
type SetSummary struct {
	Catalog      int      `json:"catalog_size"`
	Ranked       int      `json:"ranked"`
	FailedOpen   bool     `json:"failed_open"`
	BestScore    float64  `json:"best_score"`
	WorstScore   float64  `json:"worst_score"`
	AverageScore float64  `json:"average_score"`
	Best         []string `json:"best"`
}

// SelectionSummary is printed after select.
type SelectionSummary struct {
	Pipes   *SetSummary `json:"pipes,omitempty"`
	Collars *SetSummary `json:"collars,omitempty"`
}

func summarizePlan(plan drill.WellPlan, traj *drill.Trajectory) PlanSummary {
	s := PlanSummary{
		Stations:   traj.Len(),
		KOP:        plan.KOP,
		Method:     string(plan.Method),
		Convention: string(plan.Convention),
	}
	if traj.Len() == 0 {
		return s
	}
	last := traj.Stations[traj.Len()-1]
	s.FinalMD = last.MeasuredDepth
	s.FinalTVD = last.Position.TVD
	worst, _ := traj.MaxDLS()
	s.MaxDLS = worst.DLS
	s.MaxDLSMD = worst.MeasuredDepth
	return s
}

func summarizeSet(set *selection.CandidateSet) *SetSummary {
	opt := set.GetOptimum(1)
	s := &SetSummary{
		Catalog:      set.CatalogLen(),
		Ranked:       set.Len(),
		FailedOpen:   set.FailedOpen(),
		BestScore:    opt.BestScore,
		WorstScore:   opt.WorstScore,
		AverageScore: opt.AverageScore,
	}
	for _, c := range opt.Best {
		s.Best = append(s.Best, componentName(c))
	}
	return s
}

func componentName(c *selection.Candidate) string {
	if d, ok := c.Component.(interface{ Describe() *mech.Body }); ok {
		return d.Describe().Name
	}
	return fmt.Sprintf("#%d", c.Index)
}

func printTrajectory(w io.Writer, traj *drill.Trajectory) {
	fmt.Fprintln(w, "=== Trajectory ===")
	fmt.Fprintln(w, "east\tnorth\ttvd\tazimuth\tinclination\tmd\tdls")
	for _, s := range traj.Stations {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.6f\t%.6f\t%.3f\t%.6f\n",
			s.Position.East, s.Position.North, s.Position.TVD, s.Azimuth, s.Inclination, s.MeasuredDepth, s.DLS)
	}
}

func printTargets(w io.Writer, targets []drill.Point3D) {
	fmt.Fprintln(w, "=== Targets ===")
	fmt.Fprintln(w, "east\tnorth\ttvd")
	for _, t := range targets {
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\n", t.East, t.North, t.TVD)
	}
}

func printCandidates(w io.Writer, title string, opt selection.Optimum) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	fmt.Fprintln(w, "rank\tname\tscore\tbuckles")
	for i, c := range opt.Best {
		fmt.Fprintf(w, "best %d\t%s\t%.6f\t%d\n", i+1, componentName(c), c.Score, c.BuckleCount())
	}
	for i, c := range opt.Worst {
		fmt.Fprintf(w, "worst %d\t%s\t%.6f\t%d\n", len(opt.Worst)-i, componentName(c), c.Score, c.BuckleCount())
	}
}

func printStations(w io.Writer, st *trace.SimulationTrace) {
	fmt.Fprintln(w, "=== Simulated Stations ===")
	fmt.Fprintln(w, "step\ttarget\teast\tnorth\ttvd\tmd\trop_axial\trop_lateral\ttob\twob\trpm\tazimuth\tinclination\tdls\tbuckling")
	for _, s := range st.Stations {
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\t%.0f\t%.2f\t%.6f\t%.6f\t%.6f\t%t\n",
			s.Step, s.TargetIndex, s.Coordinates.East, s.Coordinates.North, s.Coordinates.TVD, s.MeasuredDepth,
			s.ROPAxial, s.ROPLateral, s.TOB, s.WOB, s.RPM, s.Azimuth, s.Inclination, s.DLS, s.Buckling)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "=== Summary ===")
	_, err = fmt.Fprintln(w, string(data))
	return err
}
