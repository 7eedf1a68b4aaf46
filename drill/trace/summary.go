package trace

import "gonum.org/v1/gonum/stat"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	RunID           string  `json:"run_id"`
	Steps           int     `json:"steps"`
	FinalMD         float64 `json:"final_md"`
	FinalTVD        float64 `json:"final_tvd"`
	MaxDLS          float64 `json:"max_dls"`
	MaxDLSDepth     float64 `json:"max_dls_md"`
	BuckledStations int     `json:"buckled_stations"`
	MeanROP         float64 `json:"mean_rop"`
	SimulatedHours  float64 `json:"simulated_hours"`
}

// Summarize computes aggregate statistics from a SimulationTrace. timeDelta is the step
// length in seconds.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace, timeDelta float64) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}
	summary.RunID = st.RunID.String()
	if len(st.Stations) == 0 {
		return summary
	}

	rops := make([]float64, len(st.Stations))
	summary.MaxDLS = st.Stations[0].DLS
	summary.MaxDLSDepth = st.Stations[0].MeasuredDepth
	for i, s := range st.Stations {
		rops[i] = s.ROPAxial
		if s.Buckling {
			summary.BuckledStations++
		}
		if s.DLS > summary.MaxDLS {
			summary.MaxDLS = s.DLS
			summary.MaxDLSDepth = s.MeasuredDepth
		}
	}

	last := st.Stations[len(st.Stations)-1]
	summary.Steps = len(st.Stations)
	summary.FinalMD = last.MeasuredDepth
	summary.FinalTVD = last.Coordinates.TVD
	summary.MeanROP = stat.Mean(rops, nil)
	summary.SimulatedHours = float64(summary.Steps) * timeDelta / 3600
	return summary
}
