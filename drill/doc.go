// Package drill provides the core well-planning types and numerics for wellsim.
//
// # Reading Guide
//
// Start with these files to understand the planning kernel:
//   - survey.go: azimuth, inclination, measured depth and dogleg severity
//   - interpolate.go: piecewise-cubic trajectory construction from KOP to targets
//   - plan.go: the immutable WellPlan value and its Output/SuggestKOP operations
//
// # Architecture
//
// The drill package owns the shared data model; behaviour that consumes a trajectory lives in
// sub-packages:
//   - drill/bit/: bit response model (ROP, lateral ROP, torque on bit)
//   - drill/mech/: drill pipe and drill collar mechanics, friction strategies
//   - drill/selection/: catalog scoring and ranking against a trajectory
//   - drill/rss/: rotary-steerable simulation loop and pad-force solver
//   - drill/trace/: simulated station records and run summaries
//   - drill/catalog/: YAML and CSV catalog loading
//
// All computation is synchronous. Only drill/selection fans out across components.
package drill
