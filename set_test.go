package aaset

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func values[T any](s *Set[T]) []T {
	out := []T{}
	for it := s.Begin(); it != s.End(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestBasicSet(t *testing.T) {
	s := New[int]()
	require.True(t, s.Empty())
	require.Zero(t, s.Size())
	require.Equal(t, s.End(), s.Begin())

	s.Insert(5)
	s.Insert(1)
	s.Insert(3)
	require.False(t, s.Empty())
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int{1, 3, 5}, values(s))

	it := s.Find(3)
	require.True(t, it.Valid())
	require.Equal(t, 3, it.Value())
	require.Equal(t, s.End(), s.Find(4))

	s.Erase(3)
	require.Equal(t, 2, s.Size())
	require.Equal(t, s.End(), s.Find(3))
	require.False(t, s.Contains(3))
	require.True(t, s.Contains(5))
	require.NoError(t, s.Verify())
}

func TestInsertIdempotent(t *testing.T) {
	s := New[string]()
	s.Insert("a")
	s.Insert("a")
	require.Equal(t, 1, s.Size())

	s.Erase("b")
	require.Equal(t, 1, s.Size())
	require.Equal(t, []string{"a"}, values(s))

	s.Erase("a")
	s.Erase("a")
	require.True(t, s.Empty())
	require.NoError(t, s.Verify())
}

func TestLowerBound(t *testing.T) {
	s := Of(1, 3, 5, 7)
	require.Equal(t, 3, s.LowerBound(2).Value())
	require.Equal(t, 3, s.LowerBound(3).Value())
	require.Equal(t, 5, s.LowerBound(4).Value())
	require.Equal(t, 1, s.LowerBound(-10).Value())
	require.Equal(t, s.End(), s.LowerBound(8))

	empty := New[int]()
	require.Equal(t, empty.End(), empty.LowerBound(1))
}

func TestConstructors(t *testing.T) {
	s := Of(4, 2, 4, 1, 2)
	require.Equal(t, []int{1, 2, 4}, values(s))

	fromSeq := FromSeq(slices.Values([]int{9, 7, 9, 8}))
	require.Equal(t, []int{7, 8, 9}, values(fromSeq))

	byLength := OfFunc(func(a, b string) bool { return len(a) < len(b) }, "ccc", "a", "bb", "x")
	require.Equal(t, 3, byLength.Size())
	require.Equal(t, []string{"a", "bb", "ccc"}, values(byLength))
	require.Equal(t, "a", byLength.Find("z").Value())

	folded := FromSeqFunc(func(a, b string) bool { return strings.ToLower(a) < strings.ToLower(b) }, slices.Values([]string{"B", "a", "b", "A"}))
	require.Equal(t, []string{"a", "B"}, values(folded))
}

func TestCopyIndependence(t *testing.T) {
	a := Of(10, 20, 30, 40, 50)
	b := a.Clone()
	if diff := cmp.Diff(values(a), values(b)); diff != "" {
		t.Fatalf("clone iterates differently (-orig +clone):\n%s", diff)
	}

	a.Insert(25)
	require.Equal(t, b.End(), b.Find(25))
	require.Equal(t, 5, b.Size())
	require.Equal(t, 6, a.Size())

	b.Erase(10)
	require.True(t, a.Contains(10))
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())
}

func TestAssign(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(7, 8)
	b.Assign(a)
	require.Equal(t, []int{1, 2, 3}, values(b))

	a.Erase(2)
	require.Equal(t, []int{1, 2, 3}, values(b))

	b.Assign(b)
	require.Equal(t, []int{1, 2, 3}, values(b))
	require.NoError(t, b.Verify())
}

func TestClear(t *testing.T) {
	s := Of(1, 2, 3)
	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, s.End(), s.Begin())
	s.Insert(4)
	require.Equal(t, []int{4}, values(s))
}

func TestAllBackward(t *testing.T) {
	s := Of(3, 1, 2, 5, 4)
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(s.All()))
	require.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(s.Backward()))

	var firstTwo []int
	for v := range s.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	require.Equal(t, []int{1, 2}, firstTwo)

	require.Empty(t, slices.Collect(New[int]().Backward()))
}

func TestHeightBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 10, 1_000, 100_000} {
		s := New[uint64]()
		for s.Size() < n {
			s.Insert(rng.Uint64())
		}
		bound := 2 * math.Log2(float64(n+1))
		require.LessOrEqual(t, float64(s.Height()), bound, "n=%d", n)
	}

	sorted := New[int]()
	for i := 0; i < 100_000; i++ {
		sorted.Insert(i)
	}
	require.LessOrEqual(t, float64(sorted.Height()), 2*math.Log2(100_001))
	require.NoError(t, sorted.Verify())
}

func TestBidirectionalTraversal(t *testing.T) {
	s := Of(8, 3, 10, 1, 6, 14, 4, 7, 13)

	var forward []int
	it := s.Begin()
	for ; it != s.End(); it.Next() {
		forward = append(forward, it.Value())
	}

	var backward []int
	for it != s.Begin() {
		it.Prev()
		backward = append(backward, it.Value())
	}

	slices.Reverse(backward)
	require.Equal(t, forward, backward)
}

func TestSetSims(t *testing.T) {
	rapid.Check(t, testSetSims)
}

func FuzzSet(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testSetSims))
}

func testSetSims(t *rapid.T) {
	sim := &setMachine{set: New[int](), model: []int{}}
	t.Repeat(map[string]func(*rapid.T){
		"":           sim.Check,
		"Insert":     sim.Insert,
		"Erase":      sim.Erase,
		"Find":       sim.Find,
		"LowerBound": sim.LowerBound,
		"Clone":      sim.Clone,
	})
}

// setMachine checks a Set against a sorted slice after every operation.
type setMachine struct {
	set   *Set[int]
	model []int
}

func (s *setMachine) Check(t *rapid.T) {
	require.NoError(t, s.set.Verify())
	require.Equal(t, len(s.model), s.set.Size())
	require.Equal(t, len(s.model) == 0, s.set.Empty())
	require.Equal(t, s.model, values(s.set))
}

func (s *setMachine) selectValue(t *rapid.T) int {
	if len(s.model) > 0 && rapid.Bool().Draw(t, "existing") {
		return rapid.SampledFrom(s.model).Draw(t, "value")
	}
	return rapid.IntRange(-1000, 1000).Draw(t, "value")
}

func (s *setMachine) Insert(t *rapid.T) {
	v := s.selectValue(t)
	s.set.Insert(v)
	if idx, found := slices.BinarySearch(s.model, v); !found {
		s.model = slices.Insert(s.model, idx, v)
	}
	it := s.set.Find(v)
	require.True(t, it.Valid())
	require.Equal(t, v, it.Value())
}

func (s *setMachine) Erase(t *rapid.T) {
	v := s.selectValue(t)
	s.set.Erase(v)
	if idx, found := slices.BinarySearch(s.model, v); found {
		s.model = slices.Delete(s.model, idx, idx+1)
	}
	require.Equal(t, s.set.End(), s.set.Find(v))
}

func (s *setMachine) Find(t *rapid.T) {
	v := s.selectValue(t)
	_, found := slices.BinarySearch(s.model, v)
	require.Equal(t, found, s.set.Find(v).Valid())
	require.Equal(t, found, s.set.Contains(v))
}

func (s *setMachine) LowerBound(t *rapid.T) {
	v := s.selectValue(t)
	idx, _ := slices.BinarySearch(s.model, v)
	it := s.set.LowerBound(v)
	if idx == len(s.model) {
		require.Equal(t, s.set.End(), it)
		return
	}
	require.Equal(t, s.model[idx], it.Value())
}

func (s *setMachine) Clone(t *rapid.T) {
	clone := s.set.Clone()
	require.Equal(t, values(s.set), values(clone))
	// mutate the copy, the original must stay as it was
	orig := s.set
	origValues := values(orig)
	s.set = clone
	s.set.Insert(rapid.IntRange(-1000, 1000).Draw(t, "extra"))
	require.Equal(t, origValues, values(orig))
	s.set.Assign(orig)
}
