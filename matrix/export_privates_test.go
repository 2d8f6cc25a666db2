// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose normalize, checkOrder, joinRuns and the summation table to
//     matrix_test without widening the production API.
//   - Runs are passed as [3]int{start, stop, stride} so tests need no private types.

// NormalizeForTest exposes normalize as (start, stop, err).
func NormalizeForTest(ix Index, length int) (int, int, error) {
	s, err := normalize(ix, length)

	return s.start, s.stop, err
}

// CheckOrderForTest exposes checkOrder with the package ordering.
func CheckOrderForTest(bounds ...Bound) error { return checkOrder(lessEq, bounds...) }

// JoinRunsForTest exposes joinRuns.
func JoinRunsForTest(runs [][3]int) [][3]int {
	in := make([]run, len(runs))
	for i, r := range runs {
		in[i] = run{start: r[0], stop: r[1], stride: r[2]}
	}
	joined := joinRuns(in)
	out := make([][3]int, len(joined))
	for i, r := range joined {
		out[i] = [3]int{r.start, r.stop, r.stride}
	}

	return out
}

// RunOffsetsForTest lists every offset of a run.
func RunOffsetsForTest(start, stop, stride int) []int {
	var offs []int
	for off := range (run{start: start, stop: stop, stride: stride}).offsets() {
		offs = append(offs, off)
	}

	return offs
}

// CompensatedForTest reports whether the pair of kinds selects compensated summation.
func CompensatedForTest(a, b Kind) bool { return strategyFor(a, b) == compensatedSum }
