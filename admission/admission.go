// Package admission implements the train-creation path: argument
// validation, path computation, and initial placement, in a fixed check
// order. Nothing is appended to shared state until every check has passed.
package admission

import (
	"go.uber.org/zap"

	"github.com/google/uuid"

	alog "github.com/nyiyui/interlock/ambient/log"
	"github.com/nyiyui/interlock/ierr"
	"github.com/nyiyui/interlock/occupancy"
	"github.com/nyiyui/interlock/pathfind"
	"github.com/nyiyui/interlock/registry"
	"github.com/nyiyui/interlock/topology"
)

// Admit enforces, in order: identifier uniqueness, section range validity,
// entry-section vacancy, and path existence. On success the train is
// recorded in reg with its computed path and classification, and occ
// marks the entry section occupied. On any failure, reg and occ are left
// unchanged.
func Admit(reg *registry.Registry, occ *occupancy.State, logger *zap.Logger, id string, entry, dest int) error {
	logger = alog.Safe(logger)
	const op = "admit"

	if reg.Has(id) {
		return ierr.Arg(op, ierr.ErrDuplicateIdentifier)
	}

	entrySec, destSec := topology.Section(entry), topology.Section(dest)
	if !entrySec.Valid() || !destSec.Valid() {
		return ierr.Arg(op, ierr.ErrInvalidSection)
	}

	if !occ.IsEmpty(entrySec) {
		return ierr.St(op, ierr.ErrEntryOccupied)
	}

	path, err := pathfind.ShortestPath(entrySec, destSec)
	if err != nil {
		return ierr.Arg(op, ierr.ErrInvalidPath)
	}

	class := topology.ClassOf(entrySec)
	reg.Admit(id, path, class)
	occ.Place(id, entrySec)

	logger.Debug("train admitted",
		zap.String("admission_id", uuid.New().String()),
		zap.String("train_id", id),
		zap.Int("entry", entry),
		zap.Int("destination", dest),
		zap.String("class", class.String()),
		zap.Int("path_len", len(path)),
	)
	return nil
}
