package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListEmptyIsZeroValue(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() {
		t.Error("expected zero value of List to be empty, isn't")
	}
	if !Empty[string]().IsEmpty() {
		t.Error("expected Empty() to be empty, isn't")
	}
	if Of(1).IsEmpty() {
		t.Error("expected [1] to be non-empty, is empty")
	}
}

func TestListHeadTailOfEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	var l List[int]
	if _, err := l.Head(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("expected head of [] to fail with ErrEmptyCollection, is %v", err)
	}
	if _, err := l.Tail(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("expected tail of [] to fail with ErrEmptyCollection, is %v", err)
	}
	if !l.HeadOption().IsNothing() {
		t.Error("expected head option of [] to be Nothing, isn't")
	}
}

func TestListPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of(2, 3)
	m := l.Prepend(1)
	if m.String() != "[1, 2, 3]" {
		t.Errorf("expected prepend to yield [1, 2, 3], is %s", m)
	}
	if l.String() != "[2, 3]" {
		t.Errorf("expected original list to be unchanged, is %s", l)
	}
	if m.first.tail != l.first {
		t.Error("expected prepended list to share the original list as its tail")
	}
	h, err := m.Head()
	if err != nil || h != 1 {
		t.Errorf("expected head of %s to be 1, is %d (%v)", m, h, err)
	}
	tl, err := m.Tail()
	if err != nil || !EqualComparable(tl, l) {
		t.Errorf("expected tail of %s to be %s, is %s (%v)", m, l, tl, err)
	}
	if c := Cons(0, m); c.String() != "[0, 1, 2, 3]" {
		t.Errorf("expected Cons(0, …) to yield [0, 1, 2, 3], is %s", c)
	}
}

func TestListString(t *testing.T) {
	cases := []struct {
		l    List[int]
		repr string
	}{
		{Empty[int](), "[]"},
		{Of(1), "[1]"},
		{Of(1, 2, 3), "[1, 2, 3]"},
		{Of(-1, 0, 10), "[-1, 0, 10]"},
	}
	for i, c := range cases {
		if c.l.String() != c.repr {
			t.Errorf("%d: expected list to render as %q, is %q", i, c.repr, c.l.String())
		}
	}
	if s := Of("a", "b").String(); s != "[a, b]" {
		t.Errorf("expected string list to render as [a, b], is %q", s)
	}
}

func TestListSliceConversion(t *testing.T) {
	s := []int{5, 4, 3}
	l := FromSlice(s)
	s[0] = 99
	if h, _ := l.Head(); h != 5 {
		t.Errorf("expected list to be independent of slice, head is %d", h)
	}
	back := l.ToSlice()
	if len(back) != 3 || back[0] != 5 || back[2] != 3 {
		t.Errorf("expected ToSlice to return [5 4 3], is %v", back)
	}
	if len(Empty[int]().ToSlice()) != 0 {
		t.Error("expected ToSlice of [] to be empty")
	}
}

func TestListFindAndForEach(t *testing.T) {
	l := Of(1, 4, 9, 16)
	even := l.Find(func(n int) bool { return n%2 == 0 })
	if even.WithDefault(-1) != 4 {
		t.Errorf("expected first even number to be 4, is %d", even.WithDefault(-1))
	}
	if !l.Find(func(n int) bool { return n > 100 }).IsNothing() {
		t.Error("expected not to find a number > 100")
	}
	sum := 0
	l.ForEach(func(n int) { sum += n })
	if sum != 30 {
		t.Errorf("expected ForEach to visit all elements (sum 30), sum is %d", sum)
	}
}

func TestListEqual(t *testing.T) {
	if !EqualComparable(Empty[int](), Empty[int]()) {
		t.Error("expected [] == []")
	}
	if EqualComparable(Of(1, 2), Of(1)) || EqualComparable(Of(1), Of(1, 2)) {
		t.Error("expected lists of different length to differ")
	}
	if EqualComparable(Of(1, 2), Of(1, 3)) {
		t.Error("expected [1, 2] != [1, 3]")
	}
	shared := Of(3, 4)
	if !EqualComparable(shared.Prepend(1), shared.Prepend(1)) {
		t.Error("expected lists with a shared suffix to be equal")
	}
	if EqualComparable(shared.Prepend(1), shared.Prepend(2)) {
		t.Error("expected lists with a shared suffix but different heads to differ")
	}
}

func TestListOptionsOfUncomparableElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of([]int{1, 2}, []int{3})
	var head []int
	switch m := l.HeadOption().Match(); m {
	case m.Just(&head):
	case m.Nothing():
		t.Error("expected head option of non-empty list to be Just, isn't")
	}
	if len(head) != 2 {
		t.Errorf("expected head to be [1 2], is %v", head)
	}
	var found []int
	switch m := l.Find(func(s []int) bool { return len(s) == 1 }).Match(); m {
	case m.Just(&found):
	case m.Nothing():
		t.Error("expected to find a slice of length 1, didn't")
	}
	if len(found) != 1 || found[0] != 3 {
		t.Errorf("expected to find [3], found %v", found)
	}
	switch m := Empty[[]int]().HeadOption().Match(); m {
	case m.Just(&head):
		t.Error("expected head option of [] to be Nothing, isn't")
	case m.Nothing():
	}
}
