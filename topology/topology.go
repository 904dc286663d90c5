// Package topology describes the fixed eleven-section track network: the
// two corridors, their adjacency, and the sections where passenger and
// freight traffic physically interact.
//
// The graph is a constant, built once. Nothing in this package mutates it
// at runtime — there is no dynamic reconfiguration, by design.
package topology

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Section is one of the eleven numbered track sections, 1..11 inclusive.
type Section int

// MinSection and MaxSection bound the valid Section range.
const (
	MinSection Section = 1
	MaxSection Section = 11
)

// Valid reports whether s is within [MinSection, MaxSection].
func (s Section) Valid() bool {
	return s >= MinSection && s <= MaxSection
}

func (s Section) String() string {
	return fmt.Sprintf("§%d", int(s))
}

// Class is the classification of a train (and, derivatively, of the entry
// section it started from).
type Class int

const (
	Passenger Class = iota
	Freight
)

func (c Class) String() string {
	if c == Passenger {
		return "passenger"
	}
	return "freight"
}

// edges is the undirected adjacency list for path discovery. Order within
// each slice is significant: it fixes the BFS tie-break for Pathfind.
var edges = map[Section][]Section{
	1:  {5},
	2:  {5},
	5:  {1, 2, 6},
	6:  {5, 10},
	10: {6, 8, 9},
	8:  {10},
	9:  {10},
	3:  {4, 7},
	4:  {3},
	7:  {3, 11},
	11: {7},
}

// passengerEntries and freightEntries classify entry sections by corridor.
// Membership is checked with slices.Contains rather than a map: these sets
// are small and fixed, and this is the same lookup shape the teacher's
// path-finding code uses for small fixed sections lists.
var passengerEntries = []Section{1, 2, 5, 6, 8, 9, 10}
var freightEntries = []Section{3, 4, 7, 11}

// crossingSensitive are the passenger sections whose occupancy blocks the
// freight 3<->4 hop.
var crossingSensitive = []Section{1, 5, 6}

// Neighbours returns the adjacency list of s in fixed, deterministic order.
// It returns nil for a section with no neighbours (none exist in this fixed
// topology, but the accessor stays total rather than panicking).
func Neighbours(s Section) []Section {
	return edges[s]
}

// ClassOf derives a train's classification from its entry section.
// It panics if entry is not a valid entry section of either corridor —
// callers must check EntryValid first; this is a programmer error, never
// a caller-supplied-input error (admission validates first).
func ClassOf(entry Section) Class {
	if slices.Contains(passengerEntries, entry) {
		return Passenger
	}
	if slices.Contains(freightEntries, entry) {
		return Freight
	}
	panic(fmt.Sprintf("topology: %v is not a valid entry section", entry))
}

// EntryValid reports whether s is a recognised entry section for either
// corridor.
func EntryValid(s Section) bool {
	return slices.Contains(passengerEntries, s) || slices.Contains(freightEntries, s)
}

// IsCrossingSensitive reports whether s is one of {1, 5, 6}: presence of a
// passenger train there blocks the freight 3<->4 hop.
func IsCrossingSensitive(s Section) bool {
	return slices.Contains(crossingSensitive, s)
}

// IsCrossingHop reports whether the hop from a to b is the freight 3<->4
// crossing hop, in either direction.
func IsCrossingHop(a, b Section) bool {
	return (a == 3 && b == 4) || (a == 4 && b == 3)
}
