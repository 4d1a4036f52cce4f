// Package ordered keeps circular lists sorted by an ordinal key.
//
// An ordered list starts at a header node with ordinal 0 which is never
// removed. The header is the only node with ordinal 0; members start at 1. Stepping forward from any member never decreases the ordinal
// and stepping backward never increases it, so a search can stop at the
// first ordinal larger than the one it is looking for.
//
// Only the dll package touches links; this package finds positions by
// walking the dll iterator and hands the actual splice to dll.Node.Insert.
package ordered

import (
	"strconv"

	"github.com/SystemBuilders/ringlist/internal/dll"
)

// Node is a list member with a fixed ordinal.
type Node struct {
	dll.Node[*Node]
	ordinal uint
}

// New returns a member node with the given ordinal that is a list unto
// itself. Ordinal 0 is reserved for the header; New panics if given 0.
func New(ordinal uint) *Node {
	if ordinal == 0 {
		panic("ordered: ordinal 0 is reserved for the header")
	}
	return newNode(ordinal)
}

// NewHeader returns the ordinal 0 entry point of a new, empty ordered list.
func NewHeader() *Node {
	return newNode(0)
}

func newNode(ordinal uint) *Node {
	n := &Node{ordinal: ordinal}
	n.Init(n)
	return n
}

// Ordinal returns the sequencing value of n.
func (n *Node) Ordinal() uint {
	return n.ordinal
}

func (n *Node) String() string {
	return strconv.FormatUint(uint64(n.ordinal), 10)
}

// Insert places n into the ordered list that starts at header: after the
// last member whose ordinal is not greater than n's, which keeps members
// with equal ordinals in arrival order. If no member is greater, n ends up
// between the last member and the header.
//
// header must be the ordinal 0 node of a well-formed ordered list and n
// must not be in any other list.
func (n *Node) Insert(header *Node) {
	anchor := header
	it := header.Iterator()
	for it.HasNext() {
		member, _ := it.Next()
		if member.ordinal > n.ordinal {
			break
		}
		anchor = member
	}
	n.Node.Insert(&anchor.Node)
}

// Find returns the first member whose ordinal equals value, searching
// from the header n.
func (n *Node) Find(value uint) (*Node, bool) {
	found, _ := n.find(value)
	return found, found != nil
}

// find also reports how many members the search looked at.
func (n *Node) find(value uint) (*Node, int) {
	visited := 0
	it := n.Iterator()
	for it.HasNext() {
		member, _ := it.Next()
		visited++
		if member.ordinal == value {
			return member, visited
		}
		if member.ordinal > value {
			break
		}
	}
	return nil, visited
}

// First returns the member with the lowest ordinal after the header n,
// or false if the list holds nothing but the header.
func (n *Node) First() (*Node, bool) {
	it := n.Iterator()
	it.Next()
	return it.Next()
}

// Ordinals returns the ordinals of the list in traversal order, starting
// with n.
func (n *Node) Ordinals() []uint {
	var out []uint
	for member := range n.All() {
		out = append(out, member.ordinal)
	}
	return out
}
