package handler

import (
	"orgdir/internal/directory/models"
	"orgdir/internal/directory/service"
)

// BuildingView is the public building shape.
type BuildingView struct {
	ID      int64   `json:"id"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// OrganizationView is the public organization shape, nested building and
// phone/activity lists included. Every organization-returning endpoint uses
// it, substring search included.
type OrganizationView struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Building   BuildingView `json:"building"`
	Phones     []string     `json:"phones"`
	Activities []string     `json:"activities"`
}

// GeoResultView is the public geo search shape.
type GeoResultView struct {
	Organizations []OrganizationView `json:"organizations"`
	Buildings     []BuildingView     `json:"buildings"`
}

func buildingView(b models.Building) BuildingView {
	return BuildingView{ID: b.ID, Address: b.Address, Lat: b.Lat, Lon: b.Lon}
}

func organizationView(o models.Organization) OrganizationView {
	phones := o.Phones
	if phones == nil {
		phones = []string{}
	}
	activities := o.Activities
	if activities == nil {
		activities = []string{}
	}
	return OrganizationView{
		ID:         o.ID,
		Name:       o.Name,
		Building:   buildingView(o.Building),
		Phones:     phones,
		Activities: activities,
	}
}

func organizationViews(orgs []models.Organization) []OrganizationView {
	out := make([]OrganizationView, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, organizationView(o))
	}
	return out
}

func geoResultView(res *service.GeoResult) GeoResultView {
	buildings := make([]BuildingView, 0, len(res.Buildings))
	for _, b := range res.Buildings {
		buildings = append(buildings, buildingView(b))
	}
	return GeoResultView{
		Organizations: organizationViews(res.Organizations),
		Buildings:     buildings,
	}
}
