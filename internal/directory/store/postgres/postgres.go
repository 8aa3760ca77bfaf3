// Package postgres is the production directory store. Fan-out lookups are
// batched with `= ANY($1)` so no operation issues one query per id.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"orgdir/internal/directory/geo"
	"orgdir/internal/directory/models"
	"orgdir/pkg/platform/sentinel"
)

// Store reads the directory tables through database/sql.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const organizationColumns = `o.id, o.name, b.id, b.address, b.lat, b.lon`

const organizationFrom = `FROM organizations o JOIN buildings b ON b.id = o.building_id`

// BuildingsInBBox returns buildings whose coordinates fall inside the box.
func (s *Store) BuildingsInBBox(ctx context.Context, box geo.BBox) ([]models.Building, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, address, lat, lon
		FROM buildings
		WHERE lat BETWEEN $1 AND $2 AND lon BETWEEN $3 AND $4
		ORDER BY id`,
		box.LatMin, box.LatMax, box.LonMin, box.LonMax)
	if err != nil {
		return nil, fmt.Errorf("query buildings in bbox: %w", err)
	}
	defer rows.Close()

	out := make([]models.Building, 0)
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.ID, &b.Address, &b.Lat, &b.Lon); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate buildings: %w", err)
	}
	return out, nil
}

// OrganizationByID returns one fully resolved organization or
// sentinel.ErrNotFound.
func (s *Store) OrganizationByID(ctx context.Context, id int64) (*models.Organization, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` `+organizationFrom+` WHERE o.id = $1`, id)

	var org models.Organization
	err := row.Scan(&org.ID, &org.Name, &org.Building.ID, &org.Building.Address, &org.Building.Lat, &org.Building.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query organization %d: %w", id, err)
	}

	resolved, err := s.attachDetails(ctx, []models.Organization{org})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// SearchOrganizationsByName matches the query case-insensitively as a name
// substring.
func (s *Store) SearchOrganizationsByName(ctx context.Context, q string) ([]models.Organization, error) {
	orgs, err := s.queryOrganizations(ctx,
		`SELECT `+organizationColumns+` `+organizationFrom+`
		 WHERE o.name ILIKE '%' || $1 || '%'
		 ORDER BY o.id`, q)
	if err != nil {
		return nil, fmt.Errorf("search organizations: %w", err)
	}
	return s.attachDetails(ctx, orgs)
}

// OrganizationsByBuildingIDs returns the organizations located in any of the
// given buildings in one batched query.
func (s *Store) OrganizationsByBuildingIDs(ctx context.Context, buildingIDs []int64) ([]models.Organization, error) {
	if len(buildingIDs) == 0 {
		return []models.Organization{}, nil
	}
	orgs, err := s.queryOrganizations(ctx,
		`SELECT `+organizationColumns+` `+organizationFrom+`
		 WHERE o.building_id = ANY($1)
		 ORDER BY o.id`, pq.Array(buildingIDs))
	if err != nil {
		return nil, fmt.Errorf("organizations by buildings: %w", err)
	}
	return s.attachDetails(ctx, orgs)
}

// OrganizationsByActivityIDs returns the organizations linked to any of the
// given activities, each once.
func (s *Store) OrganizationsByActivityIDs(ctx context.Context, activityIDs []int64) ([]models.Organization, error) {
	if len(activityIDs) == 0 {
		return []models.Organization{}, nil
	}
	orgs, err := s.queryOrganizations(ctx,
		`SELECT DISTINCT `+organizationColumns+` `+organizationFrom+`
		 JOIN organization_activities oa ON oa.organization_id = o.id
		 WHERE oa.activity_id = ANY($1)
		 ORDER BY o.id`, pq.Array(activityIDs))
	if err != nil {
		return nil, fmt.Errorf("organizations by activities: %w", err)
	}
	return s.attachDetails(ctx, orgs)
}

// ActivityExists reports whether the activity id is present.
func (s *Store) ActivityExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM activities WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check activity %d: %w", id, err)
	}
	return exists, nil
}

// ActivityChildIDs returns the immediate children of all given parents.
func (s *Store) ActivityChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM activities WHERE parent_id = ANY($1) ORDER BY id`, pq.Array(parentIDs))
	if err != nil {
		return nil, fmt.Errorf("query activity children: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan activity id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity children: %w", err)
	}
	return out, nil
}

// queryOrganizations runs a query selecting organizationColumns and scans the
// base shape (no phones/activities yet).
func (s *Store) queryOrganizations(ctx context.Context, query string, args ...any) ([]models.Organization, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Organization, 0)
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Building.ID, &org.Building.Address, &org.Building.Lat, &org.Building.Lon); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		out = append(out, org)
	}
	return out, rows.Err()
}

// attachDetails stitches phones and activity names onto the organizations in
// two batched queries keyed by the organization id set.
func (s *Store) attachDetails(ctx context.Context, orgs []models.Organization) ([]models.Organization, error) {
	if len(orgs) == 0 {
		return orgs, nil
	}

	ids := make([]int64, 0, len(orgs))
	index := make(map[int64]int, len(orgs))
	for i := range orgs {
		orgs[i].Phones = []string{}
		orgs[i].Activities = []string{}
		ids = append(ids, orgs[i].ID)
		index[orgs[i].ID] = i
	}

	phoneRows, err := s.db.QueryContext(ctx, `
		SELECT organization_id, phone
		FROM organization_phones
		WHERE organization_id = ANY($1)
		ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query organization phones: %w", err)
	}
	defer phoneRows.Close()
	for phoneRows.Next() {
		var orgID int64
		var phone string
		if err := phoneRows.Scan(&orgID, &phone); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		i := index[orgID]
		orgs[i].Phones = append(orgs[i].Phones, phone)
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phones: %w", err)
	}

	activityRows, err := s.db.QueryContext(ctx, `
		SELECT oa.organization_id, a.name
		FROM organization_activities oa
		JOIN activities a ON a.id = oa.activity_id
		WHERE oa.organization_id = ANY($1)
		ORDER BY a.name`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query organization activities: %w", err)
	}
	defer activityRows.Close()
	for activityRows.Next() {
		var orgID int64
		var name string
		if err := activityRows.Scan(&orgID, &name); err != nil {
			return nil, fmt.Errorf("scan activity name: %w", err)
		}
		i := index[orgID]
		orgs[i].Activities = append(orgs[i].Activities, name)
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return orgs, nil
}
