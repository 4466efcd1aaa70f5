package doublycircularlist_test

import (
	"container/list"
	"testing"

	"github.com/mgnsk/structures/doublycircularlist"
)

func BenchmarkInsertDelete(b *testing.B) {
	b.Run("doublycircularlist", func(b *testing.B) {
		var l doublycircularlist.List[string]

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			_, _ = l.PopBack()
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := list.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			e := l.PushBack("a")
			l.Remove(e)
		}
	})
}

func BenchmarkAtBackHalf(b *testing.B) {
	var l doublycircularlist.List[int]

	for i := range 1024 {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = l.Get(1000)
	}
}
