package snlist

// A node in a singly linked list. The node and the data it points at are
// allocated, owned and freed by the caller; the list only ever rewrites Next.
// The zero value is a detached node carrying no data.
type Node[T any] struct {
	// Data points at caller-owned memory. The list never reads, copies or
	// frees it. May be nil.
	Data *T

	// Next is the following node in the chain, nil when the node is the
	// tail or not part of any list. Append links it and Remove clears it;
	// a node must have a nil Next before it is appended.
	Next *Node[T]
}
