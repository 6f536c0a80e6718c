// Package optimistic implements the optimistic value engine: apply a
// speculative state transition immediately, confirm it with an asynchronous
// task, and roll back to the prior snapshot if the task fails.
//
// A Value merges its source sequence with its own speculative emissions into
// one broadcast stream. Update speculates synchronously, awaits the
// confirming task, and on failure re-emits the previous snapshot; consumers
// observe rollback as an ordinary data emission, never as an error event.
// The engine never swallows a task failure, it re-surfaces it unchanged.
//
// The engine assumes a single logical writer per instance. Overlapping
// Update calls race on the state cell unless the Value was constructed with
// WithSerialUpdates.
package optimistic
