// An intrusive singly linked list for caller-owned nodes
package snlist

import (
	"fmt"

	"github.com/rs/zerolog"
)

// List manages a chain of caller-owned nodes, known solely by its head
// reference. It never allocates or frees node or payload storage; every
// operation works by rewriting Next references, and nodes are matched by
// identity rather than by the data they carry.
type List[T any] struct {
	head   *Node[T]
	logger zerolog.Logger
}

// Create a new, empty list with the specified configuration
// See snlist.Configure() for creating a configuration
func New[T any](config *Configuration[T]) *List[T] {
	return &List[T]{
		logger: config.logger,
	}
}

// Head returns the first node in the list, nil when the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node in the list, the one whose Next is nil. Returns
// nil when the list is empty. Costs a full scan: the chain only links
// forward.
func (l *List[T]) Tail() *Node[T] {
	return l.findPreceding(nil)
}

// Next returns the node following node, nil when node is the tail. A nil
// node is returned unchanged.
func (l *List[T]) Next(node *Node[T]) *Node[T] {
	if node == nil {
		return node
	}
	return node.Next
}

// Find returns target if it is part of the list, nil otherwise. Nodes are
// compared by identity: two nodes pointing at the same data are still
// distinct.
func (l *List[T]) Find(target *Node[T]) *Node[T] {
	seek := l.head

	if seek == target {
		return l.head
	}

	for seek != nil {
		if seek == target {
			break
		}
		seek = l.Next(seek)
	}

	return seek
}

// Preceding returns the node immediately before target. When target is the
// head it has no real predecessor and the head itself is returned. When
// target is nil the scan runs out to the last node, so Preceding(nil) is the
// tail. Returns nil when target is not part of the list.
func (l *List[T]) Preceding(target *Node[T]) *Node[T] {
	return l.findPreceding(target)
}

// Append links node at the end of the list. The node must not already be
// part of this or any other list and its Next must be nil; Append does not
// check or reset it, and appending a still-linked node corrupts both chains.
func (l *List[T]) Append(node *Node[T]) {
	if l.head == nil {
		l.head = node
		return
	}

	l.Tail().Next = node
}

// Remove unlinks node from the list. It returns true when the node was
// removed and false when the node is not part of the list, in which case the
// chain is left untouched. A removed node has a nil Next and may be appended
// again, to this list or another. The node's data is never touched.
func (l *List[T]) Remove(node *Node[T]) bool {
	if node == l.head {
		l.head = l.Next(node)
		l.detach(node)
		return true
	}

	preceding := l.findPreceding(node)
	if preceding == nil {
		l.logger.Error().Str("node", fmt.Sprintf("%p", node)).Msg("remove: node not found in list")
		return false
	}

	// [preceding] [node] [next]: preceding skips over node
	preceding.Next = l.Next(preceding.Next)
	l.detach(node)

	l.logger.Info().Str("node", fmt.Sprintf("%p", node)).Msg("removed node")
	return true
}

// findPreceding is the one scanning routine behind Preceding and Tail. A nil
// target stops at the node whose Next is nil, the tail.
func (l *List[T]) findPreceding(target *Node[T]) *Node[T] {
	seek := l.head

	if seek == nil {
		l.logger.Warn().Msg("findPreceding: operating on empty list")
		return nil
	}

	if seek == target {
		return seek
	}

	for seek.Next != target {
		seek = seek.Next
		if seek == nil {
			break
		}
	}

	return seek
}

func (l *List[T]) detach(node *Node[T]) {
	if node == nil {
		return
	}
	node.Next = nil
}
