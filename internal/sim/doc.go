// Package sim implements the frame delivery simulator: the logic that turns
// one serialized message and a delivery scenario into the exact sequence of
// byte chunks and inter-chunk delays written to the wire.
//
// The three pieces are the chunk splitter (fair partition of a payload into
// N contiguous slices), the paced writer (full hand-off of each chunk with
// optional jitter between chunks), and the simulator itself (the per-scenario
// orchestration). All randomness flows through the [Rand] interface so every
// scenario is reproducible under a fixed seed.
package sim
