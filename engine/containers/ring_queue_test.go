package containers

import (
	"errors"
	"testing"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
	if v, _ := rq.Peek(); v != 1 {
		t.Fatalf("Peek = %d", v)
	}
	for want := 1; want <= 3; want++ {
		v, err := rq.Dequeue()
		if err != nil || v != want {
			t.Fatalf("Dequeue = %d, %v; want %d", v, err, want)
		}
	}
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("err = %v, want ErrQueueEmpty", err)
	}
}

func TestRingQueuePushDropsOldest(t *testing.T) {
	rq := NewRingQueue[string](2)
	rq.Push("a")
	rq.Push("b")
	rq.Push("c")

	var got []string
	rq.Each(func(s string) { got = append(got, s) })
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("Each = %v", got)
	}
	if rq.Len() != 2 || !rq.IsFull() {
		t.Fatalf("Len = %d", rq.Len())
	}
}
