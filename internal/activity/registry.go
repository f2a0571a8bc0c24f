// Package activity is the single source of truth for the fixed set of
// learning activities and their per-activity maximum scores. The client
// progress bars render against the same table, so changing a maximum here
// is a contract change.
package activity

import "sort"

// ID names one learning activity.
type ID string

const (
	CommunicationQuiz ID = "communication-quiz"
	ObjectQuiz        ID = "object-quiz"
	RoadCrossing      ID = "road-crossing"
	ColoringActivity  ID = "coloring-activity"
	GroceryShopping   ID = "grocery-shopping"
	SolarSystem       ID = "solar-system"
	Store3D           ID = "store-3d"
)

var maxScores = map[ID]int{
	CommunicationQuiz: 5,
	ObjectQuiz:        10,
	RoadCrossing:      10,
	ColoringActivity:  4,
	GroceryShopping:   1,
	SolarSystem:       5,
	Store3D:           5,
}

// Valid reports whether id names a known activity.
func Valid(id ID) bool {
	_, ok := maxScores[id]
	return ok
}

// MaxScore returns the maximum achievable score for id.
func MaxScore(id ID) (int, bool) {
	max, ok := maxScores[id]
	return max, ok
}

// All returns every known activity ID in stable (sorted) order.
func All() []ID {
	ids := make([]ID, 0, len(maxScores))
	for id := range maxScores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
