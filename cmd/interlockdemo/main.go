// Command interlockdemo scripts a short scenario against the interlock
// controller and narrates it via zap. It is a usage example, not an
// operator-facing CLI: there are no flags, no persistence, and no network
// surface.
package main

import (
	"go.uber.org/zap"

	"github.com/nyiyui/interlock"
)

func main() {
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	c := interlock.New(interlock.Config{Logger: logger})

	must := func(err error) {
		if err != nil {
			logger.Fatal("demo step failed", zap.Error(err))
		}
	}

	// Chain unblocking: C waits behind B waits behind A, all three clear
	// in one tick once A's vacated section frees B, and B's frees C.
	must(c.Admit("A", 5, 2))
	must(c.Admit("B", 6, 5))
	must(c.Admit("C", 10, 6))

	n, err := c.Move("A", "B", "C")
	must(err)
	logger.Info("tick result", zap.Int("advanced", n))

	for _, id := range []string{"A", "B", "C"} {
		pos, err := c.TrainPosition(id)
		must(err)
		logger.Info("train position", zap.String("train", id), zap.Int("section", pos))
	}
}
