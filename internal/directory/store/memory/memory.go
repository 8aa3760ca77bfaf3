// Package memory is the in-memory directory store. It backs unit and handler
// tests and local development; the postgres store is the production pair.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"orgdir/internal/directory/geo"
	"orgdir/internal/directory/models"
	"orgdir/pkg/platform/sentinel"
)

// Organization is the seed shape: raw links instead of resolved values.
type Organization struct {
	ID          int64
	Name        string
	BuildingID  int64
	Phones      []string
	ActivityIDs []int64
}

// Store keeps the directory in maps guarded by one RWMutex. All reads resolve
// organizations eagerly, matching the store contract.
type Store struct {
	mu          sync.RWMutex
	buildings   map[int64]models.Building
	orgs        map[int64]Organization
	activities  map[int64]models.Activity
	activityOrg map[int64][]int64 // activity id -> org ids
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		buildings:   make(map[int64]models.Building),
		orgs:        make(map[int64]Organization),
		activities:  make(map[int64]models.Activity),
		activityOrg: make(map[int64][]int64),
	}
}

// Seed replaces the store contents. Not safe to call concurrently with reads;
// tests seed once before serving.
func (s *Store) Seed(buildings []models.Building, activities []models.Activity, orgs []Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buildings = make(map[int64]models.Building, len(buildings))
	for _, b := range buildings {
		s.buildings[b.ID] = b
	}
	s.activities = make(map[int64]models.Activity, len(activities))
	for _, a := range activities {
		s.activities[a.ID] = a
	}
	s.orgs = make(map[int64]Organization, len(orgs))
	s.activityOrg = make(map[int64][]int64)
	for _, o := range orgs {
		s.orgs[o.ID] = o
		for _, actID := range o.ActivityIDs {
			s.activityOrg[actID] = append(s.activityOrg[actID], o.ID)
		}
	}
}

// BuildingsInBBox returns buildings whose point lies inside the box, ordered
// by ascending id.
func (s *Store) BuildingsInBBox(_ context.Context, box geo.BBox) ([]models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Building, 0)
	for _, b := range s.buildings {
		if box.Contains(b.Lat, b.Lon) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// OrganizationByID returns one resolved organization or sentinel.ErrNotFound.
func (s *Store) OrganizationByID(_ context.Context, id int64) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.orgs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	resolved := s.resolve(raw)
	return &resolved, nil
}

// SearchOrganizationsByName matches the query case-insensitively as a
// substring of the name.
func (s *Store) SearchOrganizationsByName(_ context.Context, q string) ([]models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q)
	out := make([]models.Organization, 0)
	for _, raw := range s.orgs {
		if strings.Contains(strings.ToLower(raw.Name), needle) {
			out = append(out, s.resolve(raw))
		}
	}
	sortByID(out)
	return out, nil
}

// OrganizationsByBuildingIDs returns the resolved organizations located in
// any of the given buildings. Unknown ids contribute nothing.
func (s *Store) OrganizationsByBuildingIDs(_ context.Context, buildingIDs []int64) ([]models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := toSet(buildingIDs)
	out := make([]models.Organization, 0)
	for _, raw := range s.orgs {
		if _, ok := wanted[raw.BuildingID]; ok {
			out = append(out, s.resolve(raw))
		}
	}
	sortByID(out)
	return out, nil
}

// OrganizationsByActivityIDs returns the resolved organizations linked to any
// of the given activities, each organization once.
func (s *Store) OrganizationsByActivityIDs(_ context.Context, activityIDs []int64) ([]models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]struct{})
	out := make([]models.Organization, 0)
	for _, actID := range activityIDs {
		for _, orgID := range s.activityOrg[actID] {
			if _, dup := seen[orgID]; dup {
				continue
			}
			seen[orgID] = struct{}{}
			out = append(out, s.resolve(s.orgs[orgID]))
		}
	}
	sortByID(out)
	return out, nil
}

// ActivityExists reports whether the activity id is known.
func (s *Store) ActivityExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.activities[id]
	return ok, nil
}

// ActivityChildIDs returns the immediate children of all given parents.
func (s *Store) ActivityChildIDs(_ context.Context, parentIDs []int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parents := toSet(parentIDs)
	out := make([]int64, 0)
	for _, a := range s.activities {
		if a.ParentID == nil {
			continue
		}
		if _, ok := parents[*a.ParentID]; ok {
			out = append(out, a.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// resolve builds the public organization shape: nested building, phone copy,
// and sorted activity names. Caller holds at least a read lock.
func (s *Store) resolve(raw Organization) models.Organization {
	names := make([]string, 0, len(raw.ActivityIDs))
	for _, actID := range raw.ActivityIDs {
		if a, ok := s.activities[actID]; ok {
			names = append(names, a.Name)
		}
	}
	sort.Strings(names)

	phones := make([]string, len(raw.Phones))
	copy(phones, raw.Phones)

	return models.Organization{
		ID:         raw.ID,
		Name:       raw.Name,
		Building:   s.buildings[raw.BuildingID],
		Phones:     phones,
		Activities: names,
	}
}

func sortByID(orgs []models.Organization) {
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].ID < orgs[j].ID })
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
