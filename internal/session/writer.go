package session

import (
	"context"
	"sync"
)

// snapshotWriter applies snapshot operations for one session key
// asynchronously but strictly in request order, so a slow write can never
// clobber a newer one. The machine treats persistence as fire-and-forget:
// enqueueing returns immediately and failures are reported through the warn
// callback rather than blocking the learner.
type snapshotWriter struct {
	store  SnapshotStore
	key    Key
	onWarn func(error)

	ops  chan snapshotOp
	done sync.WaitGroup
}

type snapshotOp struct {
	snap   *Snapshot // nil means delete
	remove bool
}

func newSnapshotWriter(store SnapshotStore, key Key, onWarn func(error)) *snapshotWriter {
	w := &snapshotWriter{
		store:  store,
		key:    key,
		onWarn: onWarn,
		ops:    make(chan snapshotOp, 16),
	}
	w.done.Add(1)
	go w.run()
	return w
}

func (w *snapshotWriter) run() {
	defer w.done.Done()
	for op := range w.ops {
		var err error
		if op.remove {
			err = w.store.Delete(context.Background(), w.key)
		} else {
			err = w.store.Save(context.Background(), w.key, op.snap)
		}
		if err != nil && w.onWarn != nil {
			w.onWarn(err)
		}
	}
}

// save enqueues a snapshot write.
func (w *snapshotWriter) save(snap *Snapshot) {
	w.ops <- snapshotOp{snap: snap}
}

// remove enqueues deletion of the key's snapshot.
func (w *snapshotWriter) remove() {
	w.ops <- snapshotOp{remove: true}
}

// close flushes pending operations and stops the writer.
func (w *snapshotWriter) close() {
	close(w.ops)
	w.done.Wait()
}
