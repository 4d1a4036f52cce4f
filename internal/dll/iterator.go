package dll

// Iterator walks a circular list once, starting at a fixed head node.
//
// The head is yielded first and exactly once. Iteration ends when the
// next candidate would be the head again. If the head has a nil link the
// iterator is empty; this is re-checked on every call, not only when the
// iterator is created.
//
// Once exhausted an iterator stays exhausted, even if nodes are later
// inserted after the last node it handed out.
//
// An iterator only moves its own cursor. Mutating the list while
// iterating is not supported.
type Iterator[E any] struct {
	head    *Node[E] // start and end of this iteration
	current *Node[E] // last node handed out, nil before the first call
	done    bool     // set once the last node was handed out, never cleared
	reverse bool
}

// Iterator returns an iterator over the list containing n that follows
// next links, starting at n.
func (n *Node[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{head: n}
}

// ReverseIterator returns an iterator that starts at n and follows prev
// links, so the second element it yields is the node before n.
func (n *Node[E]) ReverseIterator() *Iterator[E] {
	return &Iterator[E]{head: n, reverse: true}
}

// HasNext reports whether another call to Next will yield a node.
// It has no side effects.
func (it *Iterator[E]) HasNext() bool {
	if !it.head.wellFormed() || it.done {
		return false
	}
	if it.current == nil {
		return true
	}
	following := it.step(it.current)
	return following != nil && following != it.head
}

// Next advances the iterator and returns the owner of the node it moved
// to. Once the iteration is exhausted it returns the zero value and false
// and stays exhausted.
func (it *Iterator[E]) Next() (E, bool) {
	if !it.HasNext() {
		var zero E
		return zero, false
	}
	if it.current == nil {
		it.current = it.head
	} else {
		it.current = it.step(it.current)
	}
	if following := it.step(it.current); following == nil || following == it.head {
		it.done = true
	}
	return it.current.owner, true
}

func (it *Iterator[E]) step(n *Node[E]) *Node[E] {
	if it.reverse {
		return n.prev
	}
	return n.next
}
