package drill

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical station streams.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// RPMSource returns a new rotary speed jitter stream for the run, seeded with the key itself
// so --seed maps one-to-one onto the drawn values. Every call starts the stream over.
//
// Thread-safety: the returned *rand.Rand is NOT thread-safe.
func (k SimulationKey) RPMSource() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
