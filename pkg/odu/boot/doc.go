// Package boot runs named bootstrap tasks that ready an application before
// it serves, each returning an odu.Outcome.
//
// Sequential runs tasks in order, stopping at the first failure. Parallel
// fans them over a worker pool configured through core.WithWorkerOptions,
// with the first failure by completion order winning; the drain policy from
// core.WithDrainOptions decides whether unstarted tasks are reported after
// cancellation.
package boot
