package main

import (
	"errors"
	"fmt"

	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/doublycircularlist"
	"github.com/mgnsk/structures/queue"
)

func main() {
	var l doublycircularlist.List[int]

	// Keep the list sorted by inserting in order only.
	for _, v := range []int{5, 2, 8, 6} {
		l.InsertSorted(v)
	}

	fmt.Println(l.Values())

	if _, err := l.Pop(l.Len()); errors.Is(err, structures.ErrIndexOutOfRange) {
		fmt.Println(err)
	}

	q := queue.NewArray[string](structures.WithCapacity(2))

	for _, v := range []string{"one", "two", "three"} {
		if err := q.Enqueue(v); err != nil {
			fmt.Printf("enqueue %q: %v\n", v, err)
		}
	}

	front, err := q.Dequeue()
	if err != nil {
		panic(err)
	}

	fmt.Println(front)
}
