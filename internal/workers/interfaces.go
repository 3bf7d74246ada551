// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and keep
// them alive until ctx is canceled or Stop is called. Stop blocks until the
// worker has fully exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
