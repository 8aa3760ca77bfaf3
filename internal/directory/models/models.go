// Package models holds the read models served by the directory. All four
// entity kinds are externally managed; this service only ever reads them.
package models

// Building is a point on the map with a postal address. It owns the
// organizations located in it.
type Building struct {
	ID      int64
	Address string
	Lat     float64
	Lon     float64
}

// Organization is always served fully resolved: its building, the complete
// phone list, and the names of its linked activities.
type Organization struct {
	ID         int64
	Name       string
	Building   Building
	Phones     []string
	Activities []string
}

// Activity is a node in the activity taxonomy. ParentID is nil for roots;
// the parent relation forms a forest and must stay acyclic.
type Activity struct {
	ID       int64
	Name     string
	ParentID *int64
}
