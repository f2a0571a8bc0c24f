package activity

import "testing"

func TestMaxScores(t *testing.T) {
	// These maximums are an external contract: the client progress bars
	// render against them.
	cases := []struct {
		id  ID
		max int
	}{
		{CommunicationQuiz, 5},
		{ObjectQuiz, 10},
		{RoadCrossing, 10},
		{ColoringActivity, 4},
		{GroceryShopping, 1},
		{SolarSystem, 5},
		{Store3D, 5},
	}
	for _, c := range cases {
		got, ok := MaxScore(c.id)
		if !ok {
			t.Fatalf("MaxScore(%q) unknown", c.id)
		}
		if got != c.max {
			t.Fatalf("MaxScore(%q)=%d, want %d", c.id, got, c.max)
		}
	}
	if len(cases) != len(All()) {
		t.Fatalf("All() has %d activities, want %d", len(All()), len(cases))
	}
}

func TestValid(t *testing.T) {
	if !Valid(ObjectQuiz) {
		t.Fatal("object-quiz should be valid")
	}
	for _, id := range []ID{"", "laser-tag", "Object-Quiz", "object-quiz "} {
		if Valid(id) {
			t.Fatalf("Valid(%q) = true, want false", id)
		}
	}
}

func TestAllIsSorted(t *testing.T) {
	ids := All()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("All() not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}
