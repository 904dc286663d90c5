// Package occupancy tracks, bidirectionally, which train (if any) holds
// each section, and which section (if any) each present train holds. The
// two maps are kept in sync on every mutation — never read or written
// independently.
package occupancy

import "github.com/nyiyui/interlock/topology"

// Empty is the sentinel occupant of an unoccupied section.
const Empty = ""

// State is the section<->train occupancy map.
type State struct {
	bySection map[topology.Section]string
	byTrain   map[string]topology.Section
}

// New returns an empty State.
func New() *State {
	return &State{
		bySection: make(map[topology.Section]string),
		byTrain:   make(map[string]topology.Section),
	}
}

// Occupant returns the train holding s, or Empty.
func (st *State) Occupant(s topology.Section) string {
	return st.bySection[s]
}

// IsEmpty reports whether s currently holds no train.
func (st *State) IsEmpty(s topology.Section) bool {
	return st.bySection[s] == Empty
}

// Position returns the section held by id and true, or (0, false) if id is
// not currently present (never admitted, or has exited).
func (st *State) Position(id string) (topology.Section, bool) {
	s, ok := st.byTrain[id]
	return s, ok
}

// Place records a brand-new train's entry-section occupancy. Callers must
// ensure the section was empty first.
func (st *State) Place(id string, s topology.Section) {
	st.bySection[s] = id
	st.byTrain[id] = s
}

// Move relocates id from its current section to target, atomically in both
// maps.
func (st *State) Move(id string, target topology.Section) {
	cur, ok := st.byTrain[id]
	if ok {
		delete(st.bySection, cur)
	}
	st.bySection[target] = id
	st.byTrain[id] = target
}

// Exit removes id from the network entirely: its section becomes empty and
// its position entry is deleted.
func (st *State) Exit(id string) {
	cur, ok := st.byTrain[id]
	if !ok {
		return
	}
	delete(st.bySection, cur)
	delete(st.byTrain, id)
}
