// Package query exposes the two read-only inspection operations over
// section occupancy and train position. Intentionally thin: both
// operations are pass-throughs over registry/occupancy with input
// validation, nothing more.
package query

import (
	"github.com/nyiyui/interlock/ierr"
	"github.com/nyiyui/interlock/occupancy"
	"github.com/nyiyui/interlock/registry"
	"github.com/nyiyui/interlock/topology"
)

// AbsentSentinel is returned by Train when the identifier is known but the
// train has left the network.
const AbsentSentinel = -1

// Section returns the occupant of section, or occupancy.Empty if it holds
// no train. Returns ierr.ErrInvalidSection if section is out of [1, 11].
func Section(occ *occupancy.State, section int) (string, error) {
	s := topology.Section(section)
	if !s.Valid() {
		return "", ierr.Arg("section", ierr.ErrInvalidSection)
	}
	return occ.Occupant(s), nil
}

// Train returns the current section of id, or AbsentSentinel if id has
// exited. Returns ierr.ErrUnknownTrain if id was never admitted.
func Train(reg *registry.Registry, occ *occupancy.State, id string) (int, error) {
	if !reg.Has(id) {
		return 0, ierr.Arg("train", ierr.ErrUnknownTrain)
	}
	s, ok := occ.Position(id)
	if !ok {
		return AbsentSentinel, nil
	}
	return int(s), nil
}
