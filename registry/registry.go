// Package registry holds the per-train records: identifier, path,
// destination, classification, and the marked-for-exit flag. Identifiers
// are retained permanently, even after a train exits, so that
// duplicate-identifier rejection and "known but exited" queries stay
// unambiguous for the controller's lifetime.
package registry

import "github.com/nyiyui/interlock/topology"

// Train is a single train's immutable path plus its mutable lifecycle
// flag. Path[0] is the entry section; Path[len(Path)-1] is Destination.
type Train struct {
	ID          string
	Path        []topology.Section
	Destination topology.Section
	Class       topology.Class
	// MarkedForExit is set the first tick the train is requested to move
	// while occupying its destination; the next such request exits it.
	MarkedForExit bool
	// Exited is true once the train has left the network. Distinct from
	// "never admitted": a lookup miss for an unknown ID is an argument
	// error, while Exited==true is a successful lookup reporting absence.
	Exited bool
}

// Registry is an arena of Train records indexed by identifier.
type Registry struct {
	trains map[string]*Train
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{trains: make(map[string]*Train)}
}

// Has reports whether id has ever been admitted (whether or not it has
// since exited).
func (r *Registry) Has(id string) bool {
	_, ok := r.trains[id]
	return ok
}

// Get returns the Train record for id, or nil if id was never admitted.
func (r *Registry) Get(id string) *Train {
	return r.trains[id]
}

// Admit records a brand-new train. Callers must ensure !Has(id) first;
// Admit does not re-check uniqueness itself (admission.Admit does, as
// check #1 of its ordered validation).
func (r *Registry) Admit(id string, path []topology.Section, class topology.Class) *Train {
	t := &Train{
		ID:          id,
		Path:        path,
		Destination: path[len(path)-1],
		Class:       class,
	}
	r.trains[id] = t
	return t
}
