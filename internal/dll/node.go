package dll

import (
	"fmt"
	"iter"
	"strings"
)

// State describes the link state of a single node.
type State int

// These are the states a node can be in.
const (
	// Unlinked is a node that was removed from a list, or a zero Node
	// that was never initialised. Both links are nil.
	Unlinked State = iota
	// Singleton is a list of one: both links point back to the node.
	Singleton
	// Linked is a member of a list with at least two nodes.
	Linked
	// Malformed is a node with exactly one nil link. Insert and Remove
	// never produce it.
	Malformed
)

func (s State) String() string {
	switch s {
	case Unlinked:
		return "unlinked"
	case Singleton:
		return "singleton"
	case Linked:
		return "linked"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Node is a member of a circular doubly linked list.
//
// There is no separate list object: every member is a handle to the
// whole list. The links are private to this package and are only ever
// written by Insert and Remove, which keeps the following true for any
// well-formed list:
//   - if n1.next == n2 then n2.prev == n1, and the other way round.
//   - following next (or prev) N times from any member of a list of
//     N nodes leads back to that member.
//
// E is the type handed out by iterators for this node. Types that carry
// data embed a Node[*T] and call Init with themselves, so walking the list
// yields *T without any type assertion:
//
//	type task struct {
//		dll.Node[*task]
//		name string
//	}
//
//	t := new(task)
//	t.Init(t)
//
// Node is not safe for concurrent use. Callers sharing a list across
// goroutines must hold one lock for the whole list.
type Node[E any] struct {
	next, prev *Node[E]
	owner      E
}

// New returns a node that is a list unto itself.
func New[E any](owner E) *Node[E] {
	return new(Node[E]).Init(owner)
}

// Init turns n into a singleton list and records owner as the value
// iterators yield for n. It returns n.
func (n *Node[E]) Init(owner E) *Node[E] {
	n.owner = owner
	n.next = n
	n.prev = n
	return n
}

// Owner returns the value recorded by Init.
func (n *Node[E]) Owner() E {
	return n.owner
}

// Insert splices n into the list containing anchor, directly after anchor.
//
// anchor must be a member of a well-formed list. If n is already part
// of another list it has to be removed first, otherwise both lists end
// up corrupted. Neither condition is checked.
func (n *Node[E]) Insert(anchor *Node[E]) {
	anchor.next.prev = n
	n.next = anchor.next
	n.prev = anchor
	anchor.next = n
}

// Remove takes n out of whatever list it is in. The remaining members
// are relinked to each other and both of n's links are cleared, so n is
// Unlinked afterwards rather than a fresh singleton. It can be inserted
// into another list again.
//
// Removing an unlinked or malformed node only clears its links.
func (n *Node[E]) Remove() {
	if n.next == nil || n.prev == nil || n.next == n {
		n.next = nil
		n.prev = nil
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// State reports the link state of n.
func (n *Node[E]) State() State {
	switch {
	case n.next == nil && n.prev == nil:
		return Unlinked
	case n.next == nil || n.prev == nil:
		return Malformed
	case n.next == n && n.prev == n:
		return Singleton
	}
	return Linked
}

// wellFormed is the guard every read operation checks first.
func (n *Node[E]) wellFormed() bool {
	return n != nil && n.next != nil && n.prev != nil
}

// Len returns the number of members in the list containing n,
// or 0 when n is unlinked or malformed.
func (n *Node[E]) Len() int {
	size := 0
	it := n.Iterator()
	for it.HasNext() {
		it.Next()
		size++
	}
	return size
}

// All returns a sequence over the list starting at n, following next.
func (n *Node[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := n.Iterator()
		for it.HasNext() {
			e, _ := it.Next()
			if !yield(e) {
				return
			}
		}
	}
}

func (n *Node[E]) enumerate() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := 0
		for e := range n.All() {
			if !yield(i, e) {
				return
			}
			i++
		}
	}
}

// ListString renders the list starting at n as "[a, b, c]", formatting
// each owner with fmt. An unlinked or malformed starting node renders as
// "Empty".
//
// Owners that embed a Node must define their own String method, or
// formatting them would recurse through the promoted list rendering.
func (n *Node[E]) ListString() string {
	if !n.wellFormed() {
		return "Empty"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range n.enumerate() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte(']')
	return sb.String()
}
