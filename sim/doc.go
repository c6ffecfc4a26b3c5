// Package sim provides the discrete-event simulation core for a factory
// floor: a virtual clock with an event queue, a daily shift calendar,
// bounded-capacity resource pools, the four-stage production pipeline
// (machining, assembly, quality control, packaging), and the metrics
// aggregator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - simulator.go: the virtual clock, the event heap, and the run loop
//   - pool.go: bounded-capacity resources with FIFO wait queues
//   - stage.go: the pipeline stages and their stochastic durations
//
// # Concurrency model
//
// The simulation is single-threaded and cooperative. Logical tasks (the
// production lines) are chains of continuation closures scheduled on the
// clock; exactly one continuation runs at a time, so shared state (pool
// counters, metrics, machine setup state) needs no locking. All randomness
// flows through one seeded source, making runs with equal seeds bit-identical.
package sim
