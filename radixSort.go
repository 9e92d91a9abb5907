// Package binsort sorts slices of fixed-width unsigned integers by
// recursively partitioning them on individual bits, from the most
// significant bit downward (binary MSD radix sort).
package binsort

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// width returns the size of T in bits.
func width[T constraints.Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// partition rearranges v in place so that every element whose bit-th bit
// is 0 precedes every element whose bit-th bit is 1, and returns the split
// point: the index of the first element of the one-bucket (len(v) if the
// bucket is empty). Relative order within each bucket is not preserved.
//
// The bit index must be in [0, width-1]; callers guarantee this.
func partition[T constraints.Unsigned](v []T, bit int) int {
	left := 0
	right := len(v) - 1
	for left <= right {
		if (v[left]>>bit)&1 == 0 {
			// Already in the zero-bucket.
			left++
		} else {
			// Move it to the one-bucket. The element swapped in at left
			// has not been examined yet, so left stays put.
			v[left], v[right] = v[right], v[left]
			right--
		}
	}
	return left
}

// Sort sorts v in place. Equal values end up contiguous but their original
// relative order is not preserved.
func Sort[T constraints.Unsigned](v []T) {
	sortRange(v, width[T]()-1)
}

func sortRange[T constraints.Unsigned](v []T, bit int) {
	if len(v) <= 1 || bit < 0 {
		return
	}
	split := partition(v, bit)
	sortRange(v[:split], bit-1)
	sortRange(v[split:], bit-1)
}
