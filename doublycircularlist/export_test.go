package doublycircularlist

func (l *List[T]) Check() error {
	return l.check()
}

// PrevValue returns the value of the node linked as prev of the node at index i.
func (l *List[T]) PrevValue(i int) T {
	return l.nodes.Get(l.nodes.Get(l.walk(i)).prev).value
}

// NextValue returns the value of the node linked as next of the node at index i.
func (l *List[T]) NextValue(i int) T {
	return l.nodes.Get(l.nodes.Get(l.walk(i)).next).value
}
