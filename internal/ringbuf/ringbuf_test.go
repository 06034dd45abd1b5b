// internal/ringbuf/ringbuf_test.go
package ringbuf

import "testing"

func TestRing_FillsInOrder(t *testing.T) {
	r := New[int](4)

	r.Put(1)
	r.Put(2)
	r.Put(3)

	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}

	got := r.Snapshot()
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}
}

func TestRing_OverwritesOldest(t *testing.T) {
	r := New[int](4)

	for i := 1; i <= 6; i++ {
		r.Put(i)
	}

	if r.Len() != 4 {
		t.Fatalf("len = %d, want 4", r.Len())
	}

	got := r.Snapshot()
	want := []int{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}
}

func TestRing_SnapshotIsACopy(t *testing.T) {
	r := New[int](2)
	r.Put(7)

	snap := r.Snapshot()
	snap[0] = 99

	if got := r.Snapshot()[0]; got != 7 {
		t.Fatalf("ring entry = %d after mutating snapshot, want 7", got)
	}
}
