package queue_test

import (
	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/queue"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = describeQueue("array queue", func() structures.Queue[int] {
	return queue.NewArray[int]()
})

var _ = describeQueue("linked queue", func() structures.Queue[int] {
	return &queue.Linked[int]{}
})

func describeQueue(name string, newQueue func() structures.Queue[int]) bool {
	return Describe(name, func() {
		var q structures.Queue[int]

		BeforeEach(func() {
			q = newQueue()
		})

		When("the queue is empty", func() {
			Specify("dequeue, front and back fail", func() {
				_, err := q.Dequeue()
				Expect(err).To(MatchError(structures.ErrEmpty))

				_, err = q.Front()
				Expect(err).To(MatchError(structures.ErrEmpty))

				_, err = q.Back()
				Expect(err).To(MatchError(structures.ErrEmpty))

				Expect(q.Empty()).To(BeTrue())
			})
		})

		When("values are enqueued", func() {
			BeforeEach(func() {
				for i := 1; i <= 3; i++ {
					Expect(q.Enqueue(i)).To(Succeed())
				}
			})

			Specify("they are dequeued in order", func() {
				Expect(q.Len()).To(Equal(3))
				Expect(q.Front()).To(Equal(1))
				Expect(q.Back()).To(Equal(3))

				Expect(q.Dequeue()).To(Equal(1))
				Expect(q.Dequeue()).To(Equal(2))
				Expect(q.Dequeue()).To(Equal(3))

				Expect(q.Empty()).To(BeTrue())
			})

			Specify("the queue is reusable after draining", func() {
				for !q.Empty() {
					_, err := q.Dequeue()
					Expect(err).NotTo(HaveOccurred())
				}

				Expect(q.Enqueue(7)).To(Succeed())
				Expect(q.Front()).To(Equal(7))
				Expect(q.Back()).To(Equal(7))
			})

			Specify("clear empties the queue", func() {
				q.Clear()
				Expect(q.Empty()).To(BeTrue())

				q.Clear()
				Expect(q.Empty()).To(BeTrue())

				Expect(q.Enqueue(5)).To(Succeed())
				Expect(q.Front()).To(Equal(5))
			})
		})
	})
}

var _ = Describe("array queue capacity", func() {
	When("the queue is full", func() {
		Specify("enqueue fails", func() {
			q := queue.NewArray[string](structures.WithCapacity(2))

			Expect(q.Enqueue("one")).To(Succeed())
			Expect(q.Enqueue("two")).To(Succeed())

			Expect(q.Full()).To(BeTrue())
			Expect(q.Enqueue("three")).To(MatchError(structures.ErrFull))
			Expect(q.Back()).To(Equal("two"))
		})
	})

	When("the buffer wraps around", func() {
		Specify("order is kept", func() {
			q := queue.NewArray[int](structures.WithCapacity(3))

			for i := 0; i < 10; i++ {
				Expect(q.Enqueue(i)).To(Succeed())
				if q.Full() {
					Expect(q.Dequeue()).To(Equal(i - 2))
				}
			}

			Expect(q.Len()).To(Equal(2))
			Expect(q.Front()).To(Equal(8))
			Expect(q.Back()).To(Equal(9))
		})
	})
})
