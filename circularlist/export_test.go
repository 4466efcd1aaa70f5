package circularlist

func (l *List[T]) Check() error {
	return l.check()
}

// IsFrontAfter reports whether following n links from the front element ends at the front element.
func (l *List[T]) IsFrontAfter(n int) bool {
	h := l.head
	for i := 0; i < n; i++ {
		h = l.nodes.Get(h).next
	}
	return h == l.head
}
