package binsort

import "golang.org/x/exp/constraints"

// workItem is a pending partition task over v[start : start+size).
type workItem struct {
	start int
	size  int
	bit   int
}

// SortIterative sorts v in place. It runs the same partitioning as Sort
// but replaces recursion with an explicit work stack, so its call depth
// stays constant regardless of the input. Both produce identical output
// orderings for identical inputs.
func SortIterative[T constraints.Unsigned](v []T) {
	if len(v) <= 1 {
		return
	}

	stack := make([]workItem, 0, width[T]())
	stack = append(stack, workItem{0, len(v), width[T]() - 1})

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.size <= 1 || item.bit < 0 {
			continue
		}

		split := item.start + partition(v[item.start:item.start+item.size], item.bit)

		stack = append(stack,
			workItem{item.start, split - item.start, item.bit - 1},
			workItem{split, item.start + item.size - split, item.bit - 1},
		)
	}
}
