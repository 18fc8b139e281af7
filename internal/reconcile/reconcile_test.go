package reconcile

import "testing"

func TestMergeRemoteWins(t *testing.T) {
	remote := []Entry[string]{
		Confirmed("a", "remote-a"),
		Confirmed("b", "remote-b"),
	}
	local := []Entry[string]{
		Confirmed("a", "stale-a"),
		Failed("b", "failed-b"),
	}

	out := Merge(remote, local)

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Value != "remote-a" || out[0].State != StateConfirmedRemote {
		t.Fatalf("entry a: %+v", out[0])
	}
	if out[1].Value != "remote-b" || out[1].State != StateConfirmedRemote {
		t.Fatalf("failed local must be replaced by remote: %+v", out[1])
	}
}

func TestMergePendingLocalSurvivesFetch(t *testing.T) {
	remote := []Entry[string]{
		Confirmed("a", "remote-a"),
	}
	local := []Entry[string]{
		PendingLocal("a", "editing-a"),
	}

	out := Merge(remote, local)

	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	if out[0].Value != "editing-a" || out[0].State != StatePendingLocal {
		t.Fatalf("in-flight edit clobbered by fetch: %+v", out[0])
	}
}

func TestMergeLocalOnlyEntries(t *testing.T) {
	remote := []Entry[string]{
		Confirmed("a", "remote-a"),
	}
	local := []Entry[string]{
		PendingLocal("new", "unsaved"),
		Confirmed("gone", "deleted-remotely"),
		Failed("lost", "failed-write"),
	}

	out := Merge(remote, local)

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(out), out)
	}
	if out[0].Key != "a" {
		t.Fatalf("remote order must come first, got %q", out[0].Key)
	}
	if out[1].Key != "new" || out[1].State != StatePendingLocal {
		t.Fatalf("unsaved local entry must survive: %+v", out[1])
	}
}

func TestMergeEmptySides(t *testing.T) {
	if out := Merge[string](nil, nil); len(out) != 0 {
		t.Fatalf("empty merge produced %d entries", len(out))
	}

	remote := []Entry[int]{Confirmed("x", 1)}
	out := Merge(remote, nil)
	if len(out) != 1 || out[0].Value != 1 {
		t.Fatalf("remote-only merge: %+v", out)
	}
}
