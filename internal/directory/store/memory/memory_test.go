package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"orgdir/internal/directory/geo"
	"orgdir/internal/directory/models"
	"orgdir/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func ptr(v int64) *int64 { return &v }

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()

	s.store.Seed(
		[]models.Building{
			{ID: 1, Address: "Lenina 1", Lat: 0, Lon: 0},
			{ID: 2, Address: "Mira 10", Lat: 10, Lon: 10},
		},
		[]models.Activity{
			{ID: 1, Name: "Food"},
			{ID: 2, Name: "Meat", ParentID: ptr(1)},
			{ID: 3, Name: "Dairy", ParentID: ptr(1)},
			{ID: 4, Name: "Cheese", ParentID: ptr(3)},
		},
		[]Organization{
			{ID: 1, Name: "Best Cafe Ever", BuildingID: 1, Phones: []string{"2-222-222"}, ActivityIDs: []int64{1}},
			{ID: 2, Name: "Meat & Dairy Corner", BuildingID: 1, Phones: []string{"3-333-333", "8-923-666-13-13"}, ActivityIDs: []int64{2, 3}},
			{ID: 3, Name: "Far Away Shop", BuildingID: 2, Phones: nil, ActivityIDs: []int64{4}},
		},
	)
}

func (s *MemoryStoreSuite) TestOrganizationByID() {
	s.Run("resolves building, phones and activities", func() {
		org, err := s.store.OrganizationByID(s.ctx, 2)
		s.Require().NoError(err)
		s.Equal("Meat & Dairy Corner", org.Name)
		s.Equal("Lenina 1", org.Building.Address)
		s.ElementsMatch([]string{"3-333-333", "8-923-666-13-13"}, org.Phones)
		s.Equal([]string{"Dairy", "Meat"}, org.Activities)
	})

	s.Run("unknown id returns sentinel not found", func() {
		_, err := s.store.OrganizationByID(s.ctx, 999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestSearchOrganizationsByName() {
	s.Run("matches case-insensitively", func() {
		orgs, err := s.store.SearchOrganizationsByName(s.ctx, "cafe")
		s.Require().NoError(err)
		s.Require().Len(orgs, 1)
		s.Equal("Best Cafe Ever", orgs[0].Name)
	})

	s.Run("no match yields empty slice", func() {
		orgs, err := s.store.SearchOrganizationsByName(s.ctx, "pharmacy")
		s.Require().NoError(err)
		s.Empty(orgs)
	})
}

func (s *MemoryStoreSuite) TestOrganizationsByBuildingIDs() {
	s.Run("returns organizations ordered by id", func() {
		orgs, err := s.store.OrganizationsByBuildingIDs(s.ctx, []int64{1})
		s.Require().NoError(err)
		s.Require().Len(orgs, 2)
		s.Equal(int64(1), orgs[0].ID)
		s.Equal(int64(2), orgs[1].ID)
	})

	s.Run("unknown building contributes nothing", func() {
		orgs, err := s.store.OrganizationsByBuildingIDs(s.ctx, []int64{999})
		s.Require().NoError(err)
		s.Empty(orgs)
	})
}

func (s *MemoryStoreSuite) TestOrganizationsByActivityIDs() {
	s.Run("organization linked to two matching activities appears once", func() {
		orgs, err := s.store.OrganizationsByActivityIDs(s.ctx, []int64{2, 3})
		s.Require().NoError(err)
		s.Require().Len(orgs, 1)
		s.Equal(int64(2), orgs[0].ID)
	})

	s.Run("empty input yields empty result", func() {
		orgs, err := s.store.OrganizationsByActivityIDs(s.ctx, nil)
		s.Require().NoError(err)
		s.Empty(orgs)
	})
}

func (s *MemoryStoreSuite) TestBuildingsInBBox() {
	s.Run("finds buildings inside the box", func() {
		buildings, err := s.store.BuildingsInBBox(s.ctx, geo.BBox{LatMin: -1, LatMax: 1, LonMin: -1, LonMax: 1})
		s.Require().NoError(err)
		s.Require().Len(buildings, 1)
		s.Equal(int64(1), buildings[0].ID)
	})

	s.Run("empty box yields empty slice", func() {
		buildings, err := s.store.BuildingsInBBox(s.ctx, geo.BBox{LatMin: 50, LatMax: 51, LonMin: 50, LonMax: 51})
		s.Require().NoError(err)
		s.Empty(buildings)
	})
}

func (s *MemoryStoreSuite) TestActivityTaxonomy() {
	s.Run("existence check", func() {
		exists, err := s.store.ActivityExists(s.ctx, 1)
		s.Require().NoError(err)
		s.True(exists)

		exists, err = s.store.ActivityExists(s.ctx, 999)
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("child ids for a parent set", func() {
		ids, err := s.store.ActivityChildIDs(s.ctx, []int64{1})
		s.Require().NoError(err)
		s.Equal([]int64{2, 3}, ids)

		ids, err = s.store.ActivityChildIDs(s.ctx, []int64{2, 3})
		s.Require().NoError(err)
		s.Equal([]int64{4}, ids)
	})
}
