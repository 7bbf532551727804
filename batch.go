package tetrabounds

// TransformBatch collects change notifications from Transforms so that they can be delivered together. While a batch is suspended,
// a Transform attached to it (see Transform.SetBatch()) that changes doesn't notify its listeners immediately; instead, it's queued
// once, no matter how many times it changes, and its listeners are notified when the batch is resumed.
// Suspend() and Resume() calls nest; only the outermost Resume() delivers the queued notifications.
// A TransformBatch is meant to be used from a single goroutine (for example, one pass of a game's update loop).
type TransformBatch struct {
	suspended int
	pending   []*Transform
}

// NewTransformBatch returns a new, running (not suspended) TransformBatch.
func NewTransformBatch() *TransformBatch {
	return &TransformBatch{
		pending: []*Transform{},
	}
}

// Suspend suspends notifications for every Transform attached to the batch until a matching call to Resume().
func (batch *TransformBatch) Suspend() {
	batch.suspended++
}

// Resume undoes a call to Suspend(). If this is the outermost Resume() call, every Transform that changed while the batch was suspended
// notifies its listeners, in the order the Transforms first changed. Resume() called on a running batch does nothing.
func (batch *TransformBatch) Resume() {

	if batch.suspended == 0 {
		return
	}

	if batch.suspended == 1 {

		// Listeners may change other transforms while being notified; those are queued onto the end and delivered here as well.
		for i := 0; i < len(batch.pending); i++ {
			t := batch.pending[i]
			t.notifyPending = false
			t.notifyListeners()
		}

		clear(batch.pending)
		batch.pending = batch.pending[:0]

	}

	batch.suspended--

}

// Suspended returns if the batch is currently suspended.
func (batch *TransformBatch) Suspended() bool {
	return batch.suspended > 0
}

// Depth returns how many nested Suspend() calls are waiting on a Resume().
func (batch *TransformBatch) Depth() int {
	return batch.suspended
}

// Pending returns how many Transforms are waiting to notify their listeners.
func (batch *TransformBatch) Pending() int {
	return len(batch.pending)
}

// Run suspends the batch, calls the given function, and then resumes the batch, even if the function panics.
func (batch *TransformBatch) Run(update func()) {
	batch.Suspend()
	defer batch.Resume()
	update()
}

func (batch *TransformBatch) enqueue(t *Transform) {
	batch.pending = append(batch.pending, t)
}
