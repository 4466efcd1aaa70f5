package linkedlist

func (l *List[T]) Check() error {
	return l.check()
}
