// Package planner implements the tick-based movement planner: the
// deterministic, chain-aware, priority-respecting algorithm that decides
// which nominated trains may advance by exactly one section this tick,
// without ever causing a collision, an illegal crossing, or an illegal
// resource race.
//
// Candidates are computed fully before any are confirmed, and confirmed
// fully before any are committed: a compute-then-clamp shape applied twice,
// once for the per-train intended hop and once for the crossing-interlock
// and availability gates that decide whether that hop is actually allowed.
package planner

import (
	"go.uber.org/zap"

	"github.com/google/uuid"

	"golang.org/x/exp/slices"

	alog "github.com/nyiyui/interlock/ambient/log"
	"github.com/nyiyui/interlock/ierr"
	"github.com/nyiyui/interlock/occupancy"
	"github.com/nyiyui/interlock/registry"
	"github.com/nyiyui/interlock/topology"
)

// Exit is the sentinel confirmed-action target meaning "leaves the
// network", distinct from any valid topology.Section.
const Exit topology.Section = 0

// action is a single candidate's intended move for this tick, computed in
// Phase 3 before any confirmation is attempted.
type action int

const (
	actionNone action = iota // halts: at destination, not yet marked
	actionHop
	actionExit
)

// candidate is one nominated, present train carried through Phases 2-5.
type candidate struct {
	train  *registry.Train
	source topology.Section
	act    action
	target topology.Section // valid only when act == actionHop
}

// Move advances zero or more of the nominated trains by exactly one step
// (or out of the network) and returns how many were advanced. Every
// identifier in ids must exist in reg; otherwise this returns
// ierr.ErrUnknownTrain and mutates nothing. Identifiers whose trains have
// already exited are silently ignored.
func Move(reg *registry.Registry, occ *occupancy.State, logger *zap.Logger, ids []string) (int, error) {
	logger = alog.Safe(logger)
	tickID := uuid.New().String()

	// Phase 1 — validation.
	for _, id := range ids {
		if !reg.Has(id) {
			return 0, ierr.Arg("move", ierr.ErrUnknownTrain)
		}
	}

	var present []*registry.Train
	for _, id := range ids {
		t := reg.Get(id)
		if t.Exited {
			continue
		}
		present = append(present, t)
	}

	// Phase 2 — ordering: passenger before freight, then lexicographic id.
	slices.SortFunc(present, func(a, b *registry.Train) bool {
		if a.Class != b.Class {
			return a.Class == topology.Passenger
		}
		return a.ID < b.ID
	})

	// Phase 3 — intended next hop.
	cands := make([]*candidate, 0, len(present))
	for _, t := range present {
		src, ok := occ.Position(t.ID)
		if !ok {
			// Present-in-registry but no position means already exited;
			// filtered out above via t.Exited, so this cannot happen.
			continue
		}
		c := &candidate{train: t, source: src}
		switch {
		case src == t.Destination && t.MarkedForExit:
			c.act = actionExit
		case src == t.Destination:
			t.MarkedForExit = true
			c.act = actionNone
		default:
			idx := slices.Index(t.Path, src)
			c.act = actionHop
			c.target = t.Path[idx+1]
		}
		cands = append(cands, c)
	}

	// Phase 4 — iterative confirmation.
	confirmed := make(map[string]topology.Section) // train ID -> target, Exit for exits
	confirmedTargets := make(map[topology.Section]bool)

	for {
		progressed := false
		for _, c := range cands {
			if c.act == actionNone {
				continue
			}
			if _, done := confirmed[c.train.ID]; done {
				continue
			}
			if tryConfirm(occ, confirmed, confirmedTargets, c) {
				confirmed[c.train.ID] = confirmTarget(c)
				if c.act == actionHop {
					confirmedTargets[c.target] = true
				}
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	// Phase 5 — commit.
	count := 0
	for _, c := range cands {
		target, ok := confirmed[c.train.ID]
		if !ok {
			continue
		}
		if target == Exit {
			occ.Exit(c.train.ID)
			c.train.MarkedForExit = false
			c.train.Exited = true
		} else {
			occ.Move(c.train.ID, target)
		}
		count++
	}

	logger.Info("tick committed",
		zap.String("tick_id", tickID),
		zap.Int("candidates", len(ids)),
		zap.Int("advanced", count),
	)
	return count, nil
}

func confirmTarget(c *candidate) topology.Section {
	if c.act == actionExit {
		return Exit
	}
	return c.target
}

// tryConfirm applies the four confirmation rules to a single not-yet-
// confirmed candidate. It never mutates occ; occ is consulted only for the
// snapshot of pre-tick occupancy — the crossing interlock and availability
// rules are state-based, not intention-based.
func tryConfirm(occ *occupancy.State, confirmed map[string]topology.Section, confirmedTargets map[topology.Section]bool, c *candidate) bool {
	if c.act == actionExit {
		// Exits vacate without targeting any section: they trivially
		// satisfy every rule below.
		return true
	}

	// Rule 1 — crossing interlock.
	if c.train.Class == topology.Freight && topology.IsCrossingHop(c.source, c.target) {
		for s := topology.MinSection; s <= topology.MaxSection; s++ {
			if topology.IsCrossingSensitive(s) && !occ.IsEmpty(s) {
				return false
			}
		}
	}

	// Rule 4 — single-target exclusivity.
	if confirmedTargets[c.target] {
		return false
	}

	occupant := occ.Occupant(c.target)

	// Rule 2 — target availability, folding in Rule 3 (head-on swap
	// prohibition): a confirmed occupant departing to c.source would be a
	// swap, so it is excluded from the chain-unblocking clause and the
	// target is simply unavailable.
	if occupant == occupancy.Empty {
		return true
	}
	occupantTarget, isConfirmed := confirmed[occupant]
	if !isConfirmed {
		return false
	}
	return occupantTarget == Exit || occupantTarget != c.source
}
