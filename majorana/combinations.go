// Package majorana - combination enumeration shared by the k-RDM builder
// and the coverage tally.
package majorana

// Combinations invokes fn once for every strictly increasing j-element
// subset of {0,…,n−1}, in lexicographic order. The subset slice is reused
// between calls; fn must copy it if it needs to retain the values.
//
// Degenerate cases: j==0 invokes fn once with the empty subset; j>n or
// n<0 invokes fn zero times.
//
// Complexity: O(C(n,j)·j) time, O(j) space.
func Combinations(n, j int, fn func(subset []int)) {
	if j < 0 || j > n {
		return
	}
	if j == 0 {
		fn(nil)

		return
	}

	subset := make([]int, j)
	for i := range subset {
		subset[i] = i
	}

	for {
		fn(subset)

		// Advance to the next lexicographic subset: find the rightmost
		// position that can still grow, bump it, reset the tail.
		i := j - 1
		for i >= 0 && subset[i] == n-j+i {
			i--
		}
		if i < 0 {
			return
		}
		subset[i]++
		for l := i + 1; l < j; l++ {
			subset[l] = subset[l-1] + 1
		}
	}
}
