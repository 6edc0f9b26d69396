package workload

import "go.jacobcolvin.com/bigo/measure"

// sink keeps results alive so timed runs are not optimized away.
var sink int

func middleElement(n int, c *measure.Counter) {
	c.Inc()

	sink = n / 2
}

// binarySearch finds the insertion point of n in the sorted range [0, n).
func binarySearch(n int, c *measure.Counter) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		c.Inc()

		if mid < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	sink = lo
}

func linearScan(n int, c *measure.Counter) {
	total := 0
	for i := range n {
		c.Inc()

		total += i
	}

	sink = total
}

func mergeSortReversed(n int, c *measure.Counter) {
	s := make([]int, n)
	for i := range s {
		s[i] = n - i
	}

	buf := make([]int, n)
	mergeSort(s, buf, c)

	if n > 0 {
		sink = s[0]
	}
}

func mergeSort(s, buf []int, c *measure.Counter) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], c)
	mergeSort(s[mid:], buf[mid:], c)

	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		c.Inc()

		if s[i] <= s[j] {
			buf[k] = s[i]
			i++
		} else {
			buf[k] = s[j]
			j++
		}

		k++
	}

	k += copy(buf[k:], s[i:mid])
	copy(buf[k:], s[j:])
	copy(s, buf[:len(s)])
}

// twoSum looks for two distinct elements of 0..n-1 summing to -1.
func twoSum(n int, c *measure.Counter) {
	found := 0
	for i := range n {
		for j := i + 1; j < n; j++ {
			c.Inc()

			if i+j == -1 {
				found++
			}
		}
	}

	sink = found
}

func triples(n int, c *measure.Counter) {
	zero := 0
	for i := range n {
		for j := range n {
			for k := range n {
				c.Inc()

				if i+j+k == 0 {
					zero++
				}
			}
		}
	}

	sink = zero
}

func subsets(n int, c *measure.Counter) {
	var walk func(i, size int)

	walk = func(i, size int) {
		if i == n {
			c.Inc()

			sink = size

			return
		}

		walk(i+1, size)
		walk(i+1, size+1)
	}

	walk(0, 0)
}

func permutations(n int, c *measure.Counter) {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}

	var generate func(k int)

	generate = func(k int) {
		if k <= 1 {
			c.Inc()

			sink = a[0]

			return
		}

		for i := range k - 1 {
			generate(k - 1)

			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}

		generate(k - 1)
	}

	generate(n)
}
