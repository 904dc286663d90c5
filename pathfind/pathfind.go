// Package pathfind computes the unique, shortest ordered path a train
// follows through the topology, consumed only once at admission time.
package pathfind

import (
	"slices"

	"github.com/nyiyui/interlock/ierr"
	"github.com/nyiyui/interlock/topology"
)

// ShortestPath runs an undirected breadth-first search from entry to dest
// over the fixed topology graph and returns the first path discovered:
// shortest by hop count, ties broken by the fixed insertion order of
// topology.Neighbours. Returns ierr.ErrInvalidPath if dest is unreachable
// from entry — which, given the two disjoint corridors, is how
// cross-corridor destinations are rejected.
func ShortestPath(entry, dest topology.Section) ([]topology.Section, error) {
	if entry == dest {
		return []topology.Section{entry}, nil
	}

	came := map[topology.Section]topology.Section{entry: entry}
	visited := map[topology.Section]bool{entry: true}
	queue := []topology.Section{entry}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range topology.Neighbours(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			came[next] = cur
			if next == dest {
				return reconstruct(came, entry, dest), nil
			}
			queue = append(queue, next)
		}
	}
	return nil, ierr.Arg("pathfind", ierr.ErrInvalidPath)
}

func reconstruct(came map[topology.Section]topology.Section, entry, dest topology.Section) []topology.Section {
	path := []topology.Section{dest}
	for path[len(path)-1] != entry {
		prev := came[path[len(path)-1]]
		path = append(path, prev)
	}
	slices.Reverse(path)
	return path
}
