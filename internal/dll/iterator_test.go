package dll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(ns ...string) []*named {
	out := make([]*named, len(ns))
	for i, name := range ns {
		out[i] = newNamed(name)
		if i > 0 {
			out[i].Insert(&out[i-1].Node)
		}
	}
	return out
}

func TestIterateThree(t *testing.T) {
	abc := chain("a", "b", "c")
	assert.Equal(t, "[a, b, c]", abc[0].ListString())
	assert.Equal(t, "[b, c, a]", abc[1].ListString())
	assert.Equal(t, "[c, a, b]", abc[2].ListString())
}

func TestIteratorVisitsEachMemberOnce(t *testing.T) {
	nodes := chain("a", "b", "c", "d", "e")

	for _, start := range nodes {
		seen := make(map[*named]int)
		it := start.Iterator()

		first, ok := it.Next()
		require.True(t, ok)
		assert.Same(t, start, first, "head is yielded first")
		seen[first]++

		for it.HasNext() {
			e, ok := it.Next()
			require.True(t, ok)
			seen[e]++
		}

		assert.Len(t, seen, len(nodes))
		for n, count := range seen {
			assert.Equal(t, 1, count, "%v visited", n)
		}
	}
}

func TestIteratorSingleton(t *testing.T) {
	a := newNamed("a")
	it := a.Iterator()

	require.True(t, it.HasNext())
	e, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, a, e)

	assert.False(t, it.HasNext())
	e, ok = it.Next()
	assert.False(t, ok)
	assert.Nil(t, e)
}

func TestIteratorExhaustedStaysExhausted(t *testing.T) {
	nodes := chain("a", "b")
	it := nodes[0].Iterator()
	it.Next()
	it.Next()

	for i := 0; i < 3; i++ {
		assert.False(t, it.HasNext())
		e, ok := it.Next()
		assert.False(t, ok)
		assert.Nil(t, e)
	}
}

func TestIteratorExhaustionIsFinal(t *testing.T) {
	nodes := chain("a", "b")
	it := nodes[0].Iterator()
	it.Next()
	it.Next()
	require.False(t, it.HasNext())

	c := newNamed("c")
	c.Insert(&nodes[1].Node)

	assert.False(t, it.HasNext())
	e, ok := it.Next()
	assert.False(t, ok)
	assert.Nil(t, e)
	assert.Equal(t, "[a, b, c]", nodes[0].ListString())
}

func TestIteratorHasNextIsIdempotent(t *testing.T) {
	nodes := chain("a", "b", "c")
	it := nodes[0].Iterator()

	for i := 0; i < 5; i++ {
		assert.True(t, it.HasNext())
	}
	e, _ := it.Next()
	assert.Same(t, nodes[0], e)
	for i := 0; i < 5; i++ {
		assert.True(t, it.HasNext())
	}
	e, _ = it.Next()
	assert.Same(t, nodes[1], e)
}

func TestIteratorMalformedHead(t *testing.T) {
	others := []func(n, o *named) *Node[*named]{
		func(n, o *named) *Node[*named] { return nil },
		func(n, o *named) *Node[*named] { return &n.Node },
		func(n, o *named) *Node[*named] { return &o.Node },
	}

	for i, other := range others {
		for _, clearNext := range []bool{true, false} {
			nodes := chain("a", "b")
			head := nodes[0]
			if clearNext {
				head.next = nil
				head.prev = other(head, nodes[1])
			} else {
				head.prev = nil
				head.next = other(head, nodes[1])
			}

			for _, it := range []*Iterator[*named]{head.Iterator(), head.ReverseIterator()} {
				assert.False(t, it.HasNext(), "case %d clearNext=%v", i, clearNext)
				e, ok := it.Next()
				assert.False(t, ok)
				assert.Nil(t, e)
			}
			assert.Equal(t, "Empty", head.ListString())
			assert.Equal(t, 0, head.Len())
		}
	}
}

func TestIteratorRechecksHeadOnEveryCall(t *testing.T) {
	nodes := chain("a", "b", "c")
	it := nodes[0].Iterator()

	e, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, nodes[0], e)

	nodes[0].prev = nil
	assert.False(t, it.HasNext())
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorNilHead(t *testing.T) {
	var n *Node[*named]
	it := n.Iterator()
	assert.False(t, it.HasNext())
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestReverseIterator(t *testing.T) {
	nodes := chain("a", "b", "c", "d")

	var got []string
	it := nodes[0].ReverseIterator()
	for it.HasNext() {
		e, _ := it.Next()
		got = append(got, e.name)
	}
	assert.Equal(t, []string{"a", "d", "c", "b"}, got)
}

func TestAllStopsEarly(t *testing.T) {
	nodes := chain("a", "b", "c", "d")

	var got []string
	for e := range nodes[1].All() {
		got = append(got, e.name)
		if e.name == "c" {
			break
		}
	}
	assert.Equal(t, []string{"b", "c"}, got)
}
