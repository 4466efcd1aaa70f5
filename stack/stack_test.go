package stack_test

import (
	"github.com/mgnsk/structures"
	"github.com/mgnsk/structures/stack"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = describeStack("array stack", func() structures.Stack[int] {
	return stack.NewArray[int]()
})

var _ = describeStack("linked stack", func() structures.Stack[int] {
	return &stack.Linked[int]{}
})

func describeStack(name string, newStack func() structures.Stack[int]) bool {
	return Describe(name, func() {
		var s structures.Stack[int]

		BeforeEach(func() {
			s = newStack()
		})

		When("the stack is empty", func() {
			Specify("pop and top fail", func() {
				_, err := s.Pop()
				Expect(err).To(MatchError(structures.ErrEmpty))

				_, err = s.Top()
				Expect(err).To(MatchError(structures.ErrEmpty))

				Expect(s.Empty()).To(BeTrue())
				Expect(s.Len()).To(BeZero())
			})
		})

		When("values are pushed", func() {
			BeforeEach(func() {
				for i := 1; i <= 3; i++ {
					Expect(s.Push(i)).To(Succeed())
				}
			})

			Specify("they are popped in reverse order", func() {
				Expect(s.Len()).To(Equal(3))
				Expect(s.Top()).To(Equal(3))

				Expect(s.Pop()).To(Equal(3))
				Expect(s.Pop()).To(Equal(2))
				Expect(s.Pop()).To(Equal(1))

				Expect(s.Empty()).To(BeTrue())
			})

			Specify("push then pop restores the size", func() {
				Expect(s.Push(4)).To(Succeed())
				Expect(s.Pop()).To(Equal(4))
				Expect(s.Len()).To(Equal(3))
			})

			Specify("clear empties the stack", func() {
				s.Clear()
				Expect(s.Empty()).To(BeTrue())

				s.Clear()
				Expect(s.Empty()).To(BeTrue())

				Expect(s.Push(5)).To(Succeed())
				Expect(s.Top()).To(Equal(5))
			})
		})
	})
}

var _ = Describe("array stack capacity", func() {
	When("the stack is full", func() {
		Specify("push fails", func() {
			s := stack.NewArray[string](structures.WithCapacity(2))

			Expect(s.Push("one")).To(Succeed())
			Expect(s.Push("two")).To(Succeed())

			Expect(s.Full()).To(BeTrue())
			Expect(s.Push("three")).To(MatchError(structures.ErrFull))
			Expect(s.Len()).To(Equal(2))
			Expect(s.Top()).To(Equal("two"))
		})
	})

	Specify("the zero value has no capacity", func() {
		var s stack.Array[int]
		Expect(s.Full()).To(BeTrue())
		Expect(s.Push(1)).To(MatchError(structures.ErrFull))
	})

	Specify("default capacity is used", func() {
		s := stack.NewArray[int]()
		Expect(s.Cap()).To(Equal(structures.DefaultCapacity))
	})
})
