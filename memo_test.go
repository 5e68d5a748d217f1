package gridlist_test

import (
	"testing"

	"github.com/go-theft-auto/gridlist"
)

func TestMemo(t *testing.T) {
	var m gridlist.Memo[int, string]
	calls := 0
	compute := func(s string) func() string {
		return func() string {
			calls++
			return s
		}
	}

	if _, ok := m.Peek(); ok {
		t.Error("empty memo should not have a value")
	}

	if got := m.Get(1, compute("a")); got != "a" {
		t.Errorf("Get(1) = %q", got)
	}
	if got := m.Get(1, compute("b")); got != "a" {
		t.Errorf("Get(1) again = %q, want cached a", got)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}

	if got := m.Get(2, compute("c")); got != "c" {
		t.Errorf("Get(2) = %q", got)
	}
	m.Invalidate()
	if got := m.Get(2, compute("d")); got != "d" {
		t.Errorf("Get(2) after Invalidate = %q", got)
	}

	if m.Computes() != 3 || calls != 3 {
		t.Errorf("Computes() = %d, calls = %d, want 3", m.Computes(), calls)
	}
	if v, ok := m.Peek(); !ok || v != "d" {
		t.Errorf("Peek() = %q, %v", v, ok)
	}
}

func TestMemo_PointerKey(t *testing.T) {
	var m gridlist.Memo[*gridlist.Config[item], int]
	a := &gridlist.Config[item]{ColumnCount: 2}
	b := &gridlist.Config[item]{ColumnCount: 2}

	m.Get(a, func() int { return 1 })
	m.Get(a, func() int { return 2 })
	if m.Computes() != 1 {
		t.Errorf("same pointer recomputed")
	}
	if got := m.Get(b, func() int { return 3 }); got != 3 {
		t.Errorf("equal but distinct config reused cached value %d", got)
	}
}
