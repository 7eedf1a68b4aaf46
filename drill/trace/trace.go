package trace

import "github.com/google/uuid"

// SimulationTrace collects the stations emitted by one simulation run.
type SimulationTrace struct {
	RunID    uuid.UUID
	Stations []Station
}

// NewSimulationTrace creates a SimulationTrace with a fresh run ID.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		RunID:    uuid.New(),
		Stations: make([]Station, 0),
	}
}

// Record appends a station.
func (st *SimulationTrace) Record(s Station) {
	st.Stations = append(st.Stations, s)
}

// Len returns the number of recorded stations. Safe on nil.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Stations)
}
