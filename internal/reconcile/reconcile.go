package reconcile

// Per-entity sync lifecycle for state held on the client side of a
// fetch: a row is either a local edit awaiting confirmation, a row the
// server confirmed, or a failed write kept around for retry UI.

type State string

const (
	StatePendingLocal    State = "pending-local"
	StateConfirmedRemote State = "confirmed-remote"
	StateFailed          State = "failed"
)

type Entry[T any] struct {
	Key   string
	State State
	Value T
}

func Confirmed[T any](key string, v T) Entry[T] {
	return Entry[T]{Key: key, State: StateConfirmedRemote, Value: v}
}

func PendingLocal[T any](key string, v T) Entry[T] {
	return Entry[T]{Key: key, State: StatePendingLocal, Value: v}
}

func Failed[T any](key string, v T) Entry[T] {
	return Entry[T]{Key: key, State: StateFailed, Value: v}
}

// Merge reconciles a fresh remote fetch against the local entry set.
// Tie-break: remote wins, except where the local entry is pending-local —
// an edit in flight must not be clobbered by a fetch that raced it.
// Pending-local entries absent from the remote set are kept (they have
// not been written yet); all other local-only entries are dropped as
// deleted remotely. Result order is remote order, then surviving
// local-only entries in their local order.
func Merge[T any](remote, local []Entry[T]) []Entry[T] {
	localByKey := make(map[string]Entry[T], len(local))
	for _, e := range local {
		localByKey[e.Key] = e
	}

	out := make([]Entry[T], 0, len(remote))
	seen := make(map[string]bool, len(remote))

	for _, r := range remote {
		seen[r.Key] = true
		if l, ok := localByKey[r.Key]; ok && l.State == StatePendingLocal {
			out = append(out, l)
			continue
		}
		out = append(out, Confirmed(r.Key, r.Value))
	}

	for _, l := range local {
		if seen[l.Key] {
			continue
		}
		if l.State == StatePendingLocal {
			out = append(out, l)
		}
	}

	return out
}
