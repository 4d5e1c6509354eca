package flow

// nilNode terminates workList links.
const nilNode = -1

// workList is the relabel-to-front ordering of internal nodes, kept as an
// index-addressable doubly-linked list: next[v] and prev[v] are node IDs (or
// nilNode). Nodes are moved, never allocated or freed.
type workList struct {
	head       int
	next, prev []int
}

// newWorkList links nodes in the given order. n is the node-ID space.
func newWorkList(n int, nodes []int) *workList {
	l := &workList{
		head: nilNode,
		next: make([]int, n),
		prev: make([]int, n),
	}
	for i := range l.next {
		l.next[i], l.prev[i] = nilNode, nilNode
	}

	tail := nilNode
	for _, v := range nodes {
		if tail == nilNode {
			l.head = v
		} else {
			l.next[tail] = v
			l.prev[v] = tail
		}
		tail = v
	}
	return l
}

// moveToFront unlinks v and relinks it as the head. O(1).
func (l *workList) moveToFront(v int) {
	if l.head == v {
		return
	}
	// Unlink. v is not the head, so prev[v] is set.
	l.next[l.prev[v]] = l.next[v]
	if l.next[v] != nilNode {
		l.prev[l.next[v]] = l.prev[v]
	}
	// Relink at head.
	l.prev[v] = nilNode
	l.next[v] = l.head
	l.prev[l.head] = v
	l.head = v
}

// order returns the current list order.
func (l *workList) order() []int {
	var out []int
	for v := l.head; v != nilNode; v = l.next[v] {
		out = append(out, v)
	}
	return out
}
