package interlock

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nyiyui/interlock/ierr"
)

func TestControllerEndToEndChainUnblocking(t *testing.T) {
	c := New(Config{})

	for _, step := range []struct {
		id          string
		entry, dest int
	}{
		{"A", 5, 2},
		{"B", 6, 5},
		{"C", 10, 6},
	} {
		if err := c.Admit(step.id, step.entry, step.dest); err != nil {
			t.Fatalf("Admit(%s): %v", step.id, err)
		}
	}

	n, err := c.Move("A", "B", "C")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if n != 3 {
		t.Fatalf("Move = %d, want 3", n)
	}

	want := map[string]int{"A": 2, "B": 5, "C": 6}
	got := map[string]int{}
	for id := range want {
		p, err := c.TrainPosition(id)
		if err != nil {
			t.Fatalf("TrainPosition(%s): %v", id, err)
		}
		got[id] = p
	}
	if !cmp.Equal(got, want) {
		t.Fatalf("positions diff:\n%s", cmp.Diff(want, got))
	}
}

func TestControllerRejectsUnknownTrainAtomically(t *testing.T) {
	c := New(Config{})
	if err := c.Admit("F1", 3, 11); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	_, err := c.Move("F1", "ghost")
	if !errors.Is(err, ierr.ErrUnknownTrain) {
		t.Fatalf("err = %v, want ErrUnknownTrain", err)
	}
	p, err := c.TrainPosition("F1")
	if err != nil {
		t.Fatalf("TrainPosition: %v", err)
	}
	if p != 3 {
		t.Fatalf("F1 position = %d, want 3 (unchanged)", p)
	}
}

func TestControllerQuerySentinels(t *testing.T) {
	c := New(Config{})
	if err := c.Admit("F1", 3, 11); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	occ, err := c.SectionOccupant(4)
	if err != nil {
		t.Fatalf("SectionOccupant(4): %v", err)
	}
	if occ != "" {
		t.Fatalf("SectionOccupant(4) = %q, want empty", occ)
	}

	_, err = c.SectionOccupant(0)
	if !errors.Is(err, ierr.ErrInvalidSection) {
		t.Fatalf("SectionOccupant(0) err = %v, want ErrInvalidSection", err)
	}

	_, err = c.TrainPosition("ghost")
	if !errors.Is(err, ierr.ErrUnknownTrain) {
		t.Fatalf("TrainPosition(ghost) err = %v, want ErrUnknownTrain", err)
	}
}

func TestControllerFullLifecycle(t *testing.T) {
	c := New(Config{})
	if err := c.Admit("F1", 3, 11); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	steps := []int{1, 1, 0, 1}
	for i, want := range steps {
		n, err := c.Move("F1")
		if err != nil {
			t.Fatalf("Move step %d: %v", i, err)
		}
		if n != want {
			t.Fatalf("Move step %d = %d, want %d", i, n, want)
		}
	}

	p, err := c.TrainPosition("F1")
	if err != nil {
		t.Fatalf("TrainPosition: %v", err)
	}
	if p != -1 {
		t.Fatalf("TrainPosition(F1) = %d, want -1 (exited)", p)
	}
}
