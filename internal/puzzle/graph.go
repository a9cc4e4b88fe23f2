package puzzle

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a dependency graph has no topological order.
var ErrCycle = errors.New("puzzle: dependency graph contains a cycle")

// TopoSort orders vertices 0..len(requires)-1 so that every vertex follows
// all vertices it requires. requires[i] lists the indices vertex i depends on.
//
// Among ready vertices the lowest index is emitted first, so the order is
// stable for a given input. Out-of-range indices are treated as satisfied.
func TopoSort(requires [][]int) ([]int, error) {
	n := len(requires)
	indegree := make([]int, n)
	dependents := make([][]int, n)
	for i, reqs := range requires {
		for _, r := range reqs {
			if r < 0 || r >= n {
				continue
			}
			indegree[i]++
			dependents[r] = append(dependents[r], i)
		}
	}

	order := make([]int, 0, n)
	emitted := make([]bool, n)
	for len(order) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !emitted[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return order, fmt.Errorf("%w: %d of %d vertices unresolved", ErrCycle, n-len(order), n)
		}
		emitted[next] = true
		order = append(order, next)
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}
	return order, nil
}
