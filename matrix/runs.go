// SPDX-License-Identifier: MIT

// Package matrix - run algebra over the flat buffer.
//
// A run is a strided stretch of buffer offsets [start, stop) stepping by
// stride. Extraction describes a rectangular window as an ordered list of runs,
// merges adjacent runs with joinRuns and copies them with gather.
package matrix

import (
	"fmt"
	"iter"
)

const (
	panicJoinStride = "matrix: joinRuns: stride mismatch %d != %d"
	panicJoinOrder  = "matrix: joinRuns: %v"
	panicJoinDir    = "matrix: joinRuns: stride %d must be positive"
)

// run is the offset sequence start, start+stride, ... stopping before stop.
// A negative stride walks the buffer backwards; stop is then below start.
type run struct {
	start, stop, stride int
}

// shift offsets both bounds by n.
func (r run) shift(n int) run {
	return run{start: r.start + n, stop: r.stop + n, stride: r.stride}
}

// len returns the number of offsets in r.
func (r run) len() int {
	switch {
	case r.stride > 0 && r.stop > r.start:
		return (r.stop - r.start + r.stride - 1) / r.stride
	case r.stride < 0 && r.stop < r.start:
		return (r.start - r.stop - r.stride - 1) / -r.stride
	default:
		return 0
	}
}

// offsets yields every offset of r in order.
func (r run) offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.len()
		off := r.start
		for i := 0; i < n; i++ {
			if !yield(off) {
				return
			}
			off += r.stride
		}
	}
}

// joinRuns merges an ordered sequence of forward runs into the fewest
// disjoint runs with the same concatenation: two neighbours fuse when they
// share a stride and the first stops exactly where the second starts.
//
// Panics (internal consistency failure) when strides differ, a stride is not
// positive, or the runs overlap or are out of order. Callers in this package
// only ever build well-formed sequences, so a panic here is a bug.
//
// Complexity: O(len(runs)).
func joinRuns(runs []run) []run {
	if len(runs) == 0 {
		return nil
	}
	out := make([]run, 0, len(runs))
	cur := runs[0]
	if cur.stride <= 0 {
		panic(fmt.Sprintf(panicJoinDir, cur.stride))
	}
	for _, next := range runs[1:] {
		if next.stride != cur.stride {
			panic(fmt.Sprintf(panicJoinStride, cur.stride, next.stride))
		}
		if err := checkOrder(lessEq,
			named("a.start", cur.start),
			named("a.stop", cur.stop),
			named("b.start", next.start),
			named("b.stop", next.stop),
		); err != nil {
			panic(fmt.Sprintf(panicJoinOrder, err))
		}
		if cur.stop == next.start {
			cur.stop = next.stop // contiguous: extend in place
			continue
		}
		out = append(out, cur)
		cur = next
	}

	return append(out, cur)
}

// gather copies the runs of src, in order, into a fresh buffer of capacity n.
// Unit-stride runs are copied with a single slice append.
func gather[E Element](src []E, runs []run, n int) []E {
	dst := make([]E, 0, n)
	for _, r := range runs {
		if r.stride == 1 {
			dst = append(dst, src[r.start:r.stop]...)
			continue
		}
		for off := range r.offsets() {
			dst = append(dst, src[off])
		}
	}

	return dst
}
