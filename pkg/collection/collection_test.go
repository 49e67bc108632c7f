package collection

import (
	"testing"

	"lockq/pkg/guard"
)

func values[T any](src Source[T]) []T {
	var out []T
	src.Seq(func(g guard.Guard[T]) bool {
		g.View(func(v T) { out = append(out, v) })
		return true
	})
	return out
}

func TestSliceSourceOrder(t *testing.T) {
	guards := []*guard.RW[int]{guard.NewRW(1), guard.NewRW(2), guard.NewRW(3)}
	src := Slice[int](guards)

	got := values(src)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestSliceSourceEarlyStop(t *testing.T) {
	guards := []*guard.RW[int]{guard.NewRW(1), guard.NewRW(2), guard.NewRW(3)}
	src := Slice[int](guards)

	yielded := 0
	src.Seq(func(g guard.Guard[int]) bool {
		yielded++
		return false
	})

	if yielded != 1 {
		t.Errorf("expected iteration to stop after 1 yield, got %d", yielded)
	}
}

func TestMapSourceCoversAllValues(t *testing.T) {
	m := map[string]*guard.Mutex[int]{
		"a": guard.NewMutex(1),
		"b": guard.NewMutex(2),
		"c": guard.NewMutex(3),
	}
	src := Map(m)

	got := values(src)
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %d", len(got))
	}
	sum := 0
	for _, v := range got {
		sum += v
	}
	if sum != 6 {
		t.Errorf("expected values {1,2,3} in some order, got %v", got)
	}
}

func TestOrderedMapAscendingIteration(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(3, guard.NewRW("c"))
	m.Set(1, guard.NewRW("a"))
	m.Set(2, guard.NewRW("b"))

	got := values(m.Source())
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestOrderedMapOperations(t *testing.T) {
	m := NewOrderedMap[string, int]()

	if m.Len() != 0 {
		t.Errorf("expected empty map, got len %d", m.Len())
	}

	m.Set("x", guard.NewMutex(10))
	m.Set("y", guard.NewMutex(20))
	m.Set("x", guard.NewMutex(11)) // replace

	if m.Len() != 2 {
		t.Errorf("expected len 2 after replace, got %d", m.Len())
	}

	g, ok := m.Get("x")
	if !ok {
		t.Fatal("expected key x to exist")
	}
	var got int
	g.View(func(v int) { got = v })
	if got != 11 {
		t.Errorf("expected replaced value 11, got %d", got)
	}

	if !m.Delete("y") {
		t.Error("expected Delete to report an existing key")
	}
	if m.Delete("y") {
		t.Error("expected Delete to report a missing key")
	}
	if m.Len() != 1 {
		t.Errorf("expected len 1 after delete, got %d", m.Len())
	}
}

// Adapters enumerate handles without touching locks: a poisoned element is
// still yielded, and only its View fails.
func TestSourceDoesNotAcquire(t *testing.T) {
	bad := guard.NewRW(2)
	func() {
		defer func() { recover() }()
		bad.Update(func(*int) { panic("boom") })
	}()

	guards := []*guard.RW[int]{guard.NewRW(1), bad, guard.NewRW(3)}
	src := Slice[int](guards)

	yielded := 0
	readable := 0
	src.Seq(func(g guard.Guard[int]) bool {
		yielded++
		if g.View(func(int) {}) {
			readable++
		}
		return true
	})

	if yielded != 3 {
		t.Errorf("expected 3 handles yielded, got %d", yielded)
	}
	if readable != 2 {
		t.Errorf("expected 2 readable elements, got %d", readable)
	}
}
