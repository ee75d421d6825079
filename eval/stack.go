package eval

import (
	"github.com/edwingeng/deque"

	"littlecalc/types"
)

// stack is the operand stack of a tree walk
type stack[T any] struct {
	dq deque.Deque
}

func newStack[T any]() *stack[T] {
	return &stack[T]{dq: deque.NewDeque()}
}

func (s *stack[T]) push(v T) {
	s.dq.PushBack(v)
}

func (s *stack[T]) pop() T {
	if s.dq.Empty() {
		types.Invariantf("pop from empty operand stack")
	}
	return s.dq.PopBack().(T)
}

func (s *stack[T]) len() int {
	return s.dq.Len()
}

func (s *stack[T]) clear() {
	for !s.dq.Empty() {
		s.dq.PopBack()
	}
}
