// Package log provides the controller's ambient structured logging. It is
// diagnostic only: nothing in the controller's external contract depends
// on log content, and a nil *zap.Logger is always safe to use.
//
// The logger is injected rather than installed globally — a library must
// not call zap.ReplaceGlobals as a side effect of construction.
package log

import "go.uber.org/zap"

// Nop returns a logger that discards everything, used as the default when
// a Controller is constructed without an explicit logger.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Safe returns l, or a no-op logger if l is nil.
func Safe(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
