package cache

// lruNode is a node in a doubly-linked LRU list holding one cache entry.
type lruNode[V any] struct {
	key   string
	value V
	prev  *lruNode[V]
	next  *lruNode[V]
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type lruList[V any] struct {
	head *lruNode[V]
	tail *lruNode[V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *lruList[V]) Len() int {
	return l.len
}

// PushFront inserts a new entry as the most recently used.
func (l *lruList[V]) PushFront(key string, value V) *lruNode[V] {
	node := &lruNode[V]{key: key, value: value}
	l.linkFront(node)
	return node
}

// MoveToFront marks an existing node as the most recently used.
func (l *lruList[V]) MoveToFront(node *lruNode[V]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.linkFront(node)
}

// Remove removes a node from the list.
func (l *lruList[V]) Remove(node *lruNode[V]) {
	l.unlink(node)
}

// RemoveOldest removes and returns the least recently used node.
// Returns nil if the list is empty.
func (l *lruList[V]) RemoveOldest() *lruNode[V] {
	node := l.tail
	if node != nil {
		l.unlink(node)
	}
	return node
}

func (l *lruList[V]) linkFront(node *lruNode[V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// unlink detaches a node and clears its pointers.
func (l *lruList[V]) unlink(node *lruNode[V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
