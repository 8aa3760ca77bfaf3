// Package service orchestrates directory queries: existence checks, geometry
// and tree computation, fan-out aggregation, and result shaping. All
// operations are stateless and read-only; each is a pure function of its
// inputs plus current store contents.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"orgdir/internal/directory/activitytree"
	"orgdir/internal/directory/geo"
	"orgdir/internal/directory/models"
	"orgdir/internal/platform/metrics"
	dErrors "orgdir/pkg/domain-errors"
	"orgdir/pkg/platform/sentinel"
)

// BuildingStore is the read surface the service needs for buildings.
type BuildingStore interface {
	BuildingsInBBox(ctx context.Context, box geo.BBox) ([]models.Building, error)
}

// OrganizationStore returns organizations fully resolved: building, phones,
// and activity names are always populated.
type OrganizationStore interface {
	OrganizationByID(ctx context.Context, id int64) (*models.Organization, error)
	SearchOrganizationsByName(ctx context.Context, q string) ([]models.Organization, error)
	OrganizationsByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]models.Organization, error)
	OrganizationsByActivityIDs(ctx context.Context, activityIDs []int64) ([]models.Organization, error)
}

// ActivityStore is the read surface for the activity taxonomy. Its
// ActivityChildIDs method doubles as the activitytree.ChildLister.
type ActivityStore interface {
	ActivityExists(ctx context.Context, id int64) (bool, error)
	ActivityChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
}

// GeoResult is the shape of a geospatial search: the matched buildings and
// the organizations located in them.
type GeoResult struct {
	Organizations []models.Organization
	Buildings     []models.Building
}

// Service answers directory queries against the injected stores.
type Service struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	buildings  BuildingStore
	orgs       OrganizationStore
	activities ActivityStore
	tree       *activitytree.Resolver
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New wires a Service. The activity tree resolver is built over the activity
// store with the default three-level depth limit.
func New(buildings BuildingStore, orgs OrganizationStore, activities ActivityStore, opts ...Option) *Service {
	s := &Service{
		buildings:  buildings,
		orgs:       orgs,
		activities: activities,
		tree:       activitytree.New(activities),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// GetOrganization returns one organization by id.
func (s *Service) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	org, err := s.orgs.OrganizationByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "organization not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load organization")
	}
	return org, nil
}

// SearchOrganizationsByName matches the query case-insensitively as a
// substring of the organization name. Empty queries are rejected at the
// boundary and never reach here.
func (s *Service) SearchOrganizationsByName(ctx context.Context, q string) ([]models.Organization, error) {
	orgs, err := s.orgs.SearchOrganizationsByName(ctx, q)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search organizations")
	}
	return dedupeOrganizations(orgs), nil
}

// OrganizationsInBuilding lists the organizations located in a building. An
// unknown building id yields an empty list, not an error: unlike the activity
// lookup there is no existence check here.
func (s *Service) OrganizationsInBuilding(ctx context.Context, buildingID int64) ([]models.Organization, error) {
	orgs, err := s.orgs.OrganizationsByBuildingIDs(ctx, []int64{buildingID})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list building organizations")
	}
	return dedupeOrganizations(orgs), nil
}

// OrganizationsByActivity lists organizations linked to the activity or any
// of its descendants within the three-level depth limit. An unknown activity
// id is a not-found condition, never an empty list.
func (s *Service) OrganizationsByActivity(ctx context.Context, activityID int64) ([]models.Organization, error) {
	exists, err := s.activities.ActivityExists(ctx, activityID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check activity")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeNotFound, "activity not found")
	}

	ids, err := s.tree.DescendantIDs(ctx, activityID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve activity tree")
	}

	orgs, err := s.orgs.OrganizationsByActivityIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list activity organizations")
	}
	return dedupeOrganizations(orgs), nil
}

// GeoRadius returns the buildings within radiusM meters of the center plus
// their organizations. The bbox prefilter is deliberately loose, so every
// candidate is re-checked by exact great-circle distance. radiusM > 0 is the
// boundary's precondition.
func (s *Service) GeoRadius(ctx context.Context, lat, lon, radiusM float64) (*GeoResult, error) {
	box := geo.BBoxForRadius(lat, lon, radiusM)
	candidates, err := s.buildings.BuildingsInBBox(ctx, box)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query buildings")
	}

	near := candidates[:0:0]
	for _, b := range candidates {
		if geo.DistanceMeters(lat, lon, b.Lat, b.Lon) <= radiusM {
			near = append(near, b)
		}
	}
	s.observeGeoSearch("radius")

	return s.assembleGeoResult(ctx, near)
}

// GeoRectangle returns the buildings inside the rectangle spanned by two
// arbitrary corner points plus their organizations. The normalized bbox is
// exact for rectangles, so no secondary filter is applied.
func (s *Service) GeoRectangle(ctx context.Context, lat1, lon1, lat2, lon2 float64) (*GeoResult, error) {
	box := geo.BBoxForRectangle(lat1, lon1, lat2, lon2)
	buildings, err := s.buildings.BuildingsInBBox(ctx, box)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query buildings")
	}
	s.observeGeoSearch("rectangle")

	return s.assembleGeoResult(ctx, buildings)
}

// assembleGeoResult fetches the organizations for a building set in one
// batched lookup. An empty building set short-circuits: no further store
// calls, two empty lists.
func (s *Service) assembleGeoResult(ctx context.Context, buildings []models.Building) (*GeoResult, error) {
	if len(buildings) == 0 {
		return &GeoResult{Organizations: []models.Organization{}, Buildings: []models.Building{}}, nil
	}

	ids := make([]int64, 0, len(buildings))
	for _, b := range buildings {
		ids = append(ids, b.ID)
	}

	orgs, err := s.orgs.OrganizationsByBuildingIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list building organizations")
	}

	return &GeoResult{
		Organizations: dedupeOrganizations(orgs),
		Buildings:     buildings,
	}, nil
}

// dedupeOrganizations collapses organizations reached through multiple paths
// into one entry per id, ordered by ascending id for reproducibility. The
// dedup is kept here rather than relying on a store DISTINCT so the logic
// holds for any backend.
func dedupeOrganizations(orgs []models.Organization) []models.Organization {
	seen := make(map[int64]struct{}, len(orgs))
	out := make([]models.Organization, 0, len(orgs))
	for _, o := range orgs {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Service) observeGeoSearch(kind string) {
	if s.metrics != nil {
		s.metrics.IncGeoSearch(kind)
	}
}
