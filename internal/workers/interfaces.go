// Package workers provides abstractions for running background work in the
// application. It defines the Worker interface, a Workers aggregate for
// starting several workers in a unified way, and a Runner that executes
// submitted jobs strictly one at a time.
package workers

// Worker is the interface implemented by any background worker. It defines
// a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work or
// spawn goroutines internally.
type Worker interface {
	Run()
}
