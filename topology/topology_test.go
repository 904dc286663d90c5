package topology

import "testing"

func TestNeighboursFixedOrder(t *testing.T) {
	got := Neighbours(5)
	want := []Section{1, 2, 6}
	if len(got) != len(want) {
		t.Fatalf("Neighbours(5) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbours(5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		entry Section
		want  Class
	}{
		{1, Passenger}, {2, Passenger}, {5, Passenger}, {6, Passenger},
		{8, Passenger}, {9, Passenger}, {10, Passenger},
		{3, Freight}, {4, Freight}, {7, Freight}, {11, Freight},
	}
	for _, c := range cases {
		if got := ClassOf(c.entry); got != c.want {
			t.Errorf("ClassOf(%v) = %v, want %v", c.entry, got, c.want)
		}
	}
}

func TestCrossingSensitive(t *testing.T) {
	for _, s := range []Section{1, 5, 6} {
		if !IsCrossingSensitive(s) {
			t.Errorf("IsCrossingSensitive(%v) = false, want true", s)
		}
	}
	for _, s := range []Section{2, 3, 4, 7, 8, 9, 10, 11} {
		if IsCrossingSensitive(s) {
			t.Errorf("IsCrossingSensitive(%v) = true, want false", s)
		}
	}
}

func TestIsCrossingHop(t *testing.T) {
	if !IsCrossingHop(3, 4) || !IsCrossingHop(4, 3) {
		t.Error("IsCrossingHop(3,4) and (4,3) must both be true")
	}
	if IsCrossingHop(3, 7) || IsCrossingHop(7, 11) {
		t.Error("freight-internal hops must not be crossing hops")
	}
}

func TestSectionValid(t *testing.T) {
	if Section(0).Valid() || Section(12).Valid() {
		t.Error("0 and 12 must be invalid sections")
	}
	if !Section(1).Valid() || !Section(11).Valid() {
		t.Error("1 and 11 must be valid sections")
	}
}
