// Package handler is the thin HTTP layer over the directory service. It owns
// parameter parsing and validation; everything invalid is rejected here so
// the service never sees a bad radius or an empty query.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"orgdir/internal/directory/models"
	"orgdir/internal/directory/service"
	"orgdir/internal/transport/http/shared"
	dErrors "orgdir/pkg/domain-errors"
	"orgdir/pkg/requestcontext"
)

// Service defines the directory operations the handler exposes.
type Service interface {
	GetOrganization(ctx context.Context, id int64) (*models.Organization, error)
	SearchOrganizationsByName(ctx context.Context, q string) ([]models.Organization, error)
	OrganizationsInBuilding(ctx context.Context, buildingID int64) ([]models.Organization, error)
	OrganizationsByActivity(ctx context.Context, activityID int64) ([]models.Organization, error)
	GeoRadius(ctx context.Context, lat, lon, radiusM float64) (*service.GeoResult, error)
	GeoRectangle(ctx context.Context, lat1, lon1, lat2, lon2 float64) (*service.GeoResult, error)
}

// Handler serves the directory endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a directory Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register mounts the directory routes on the router. Auth and rate limiting
// are applied by the caller so health and metrics can stay outside them.
func (h *Handler) Register(r chi.Router) {
	r.Get("/organizations/search", h.handleSearchOrganizations)
	r.Get("/organizations/{orgID}", h.handleGetOrganization)
	r.Get("/buildings/{buildingID}/organizations", h.handleOrganizationsInBuilding)
	r.Get("/activities/{activityID}/organizations", h.handleOrganizationsByActivity)
	r.Get("/geo/radius", h.handleGeoRadius)
	r.Get("/geo/rectangle", h.handleGeoRectangle)
}

func (h *Handler) handleSearchOrganizations(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "query parameter 'q' must not be empty"))
		return
	}

	orgs, err := h.service.SearchOrganizationsByName(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, organizationViews(orgs))
}

func (h *Handler) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "orgID")
	if !ok {
		return
	}

	org, err := h.service.GetOrganization(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, organizationView(*org))
}

func (h *Handler) handleOrganizationsInBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "buildingID")
	if !ok {
		return
	}

	orgs, err := h.service.OrganizationsInBuilding(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, organizationViews(orgs))
}

func (h *Handler) handleOrganizationsByActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "activityID")
	if !ok {
		return
	}

	orgs, err := h.service.OrganizationsByActivity(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, organizationViews(orgs))
}

func (h *Handler) handleGeoRadius(w http.ResponseWriter, r *http.Request) {
	lat, ok := h.queryFloat(w, r, "lat")
	if !ok {
		return
	}
	lon, ok := h.queryFloat(w, r, "lon")
	if !ok {
		return
	}
	radius, ok := h.queryFloat(w, r, "r_m")
	if !ok {
		return
	}
	if radius <= 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "radius must be greater than zero"))
		return
	}

	res, err := h.service.GeoRadius(r.Context(), lat, lon, radius)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, geoResultView(res))
}

func (h *Handler) handleGeoRectangle(w http.ResponseWriter, r *http.Request) {
	var coords [4]float64
	for i, name := range [...]string{"lat1", "lon1", "lat2", "lon2"} {
		v, ok := h.queryFloat(w, r, name)
		if !ok {
			return
		}
		coords[i] = v
	}

	res, err := h.service.GeoRectangle(r.Context(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, geoResultView(res))
}

// pathID parses a path parameter as an int64, writing a validation error on
// failure.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "path parameter '"+name+"' must be an integer"))
		return 0, false
	}
	return id, true
}

// queryFloat parses a required float query parameter, writing a validation
// error on failure.
func (h *Handler) queryFloat(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "query parameter '"+name+"' is required"))
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "query parameter '"+name+"' must be a number"))
		return 0, false
	}
	return v, true
}

// writeServiceError logs unexpected failures and writes the mapped envelope.
// Not-found conditions are expected outcomes and logged at debug only.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.DebugContext(r.Context(), "entity not found",
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(r.Context()),
		)
	} else {
		h.logger.ErrorContext(r.Context(), "request failed",
			"error", err.Error(),
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(r.Context()),
		)
	}
	shared.WriteError(w, err)
}
