// Package interlock is the host-facing façade for the railway interlocking
// controller: a fixed eleven-section, two-corridor topology over which
// trains are admitted, routed, and advanced one section per tick by the
// planner in package planner.
//
// Controller glues together several independently-testable sub-packages
// (topology, registry, occupancy, planner, admission, query) behind one
// exported type.
package interlock

import (
	"go.uber.org/zap"

	"github.com/nyiyui/interlock/admission"
	alog "github.com/nyiyui/interlock/ambient/log"
	"github.com/nyiyui/interlock/occupancy"
	"github.com/nyiyui/interlock/planner"
	"github.com/nyiyui/interlock/query"
	"github.com/nyiyui/interlock/registry"
)

// Config configures a Controller. The zero value is valid: a nil Logger
// means diagnostics are discarded.
type Config struct {
	// Logger receives structured diagnostic events for admissions and
	// ticks. Never required for correctness; nil is safe.
	Logger *zap.Logger
}

// Controller is the single entry point a host embeds to drive the network:
// admit trains, advance them tick by tick, and query occupancy/position.
// It is not safe for concurrent use: the host is expected to call its
// methods serially, one tick at a time.
type Controller struct {
	reg    *registry.Registry
	occ    *occupancy.State
	logger *zap.Logger
}

// New returns an empty Controller: no trains admitted, every section
// empty.
func New(cfg Config) *Controller {
	return &Controller{
		reg:    registry.New(),
		occ:    occupancy.New(),
		logger: alog.Safe(cfg.Logger),
	}
}

// Admit creates a new train at entry, routes it to dest, and places it on
// the network. Validation runs in a fixed order: duplicate identifier,
// invalid section, entry occupied, invalid path.
func (c *Controller) Admit(id string, entry, dest int) error {
	return admission.Admit(c.reg, c.occ, c.logger, id, entry, dest)
}

// Move advances zero or more of the nominated trains by exactly one
// section (or out of the network) this tick, and returns how many were
// advanced. Every id must be known to the controller, or this returns
// ierr.ErrUnknownTrain and advances nothing.
func (c *Controller) Move(ids ...string) (int, error) {
	return planner.Move(c.reg, c.occ, c.logger, ids)
}

// SectionOccupant returns the identifier of the train occupying section,
// or the empty string if it holds no train.
func (c *Controller) SectionOccupant(section int) (string, error) {
	return query.Section(c.occ, section)
}

// TrainPosition returns the current section of id, or query.AbsentSentinel
// (-1) if id has exited the network.
func (c *Controller) TrainPosition(id string) (int, error) {
	return query.Train(c.reg, c.occ, id)
}
