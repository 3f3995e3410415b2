package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gigboard/internal/apperr"
	"gigboard/internal/core/cache"
	"gigboard/internal/domain"
	"gigboard/pkg/geo"
)

const nearbyTTL = 30 * time.Second

type LocationService struct {
	users domain.UserRepository
	jobs  domain.JobRepository
	cache *cache.Cache // optional
	log   *zap.Logger
}

func NewLocationService(users domain.UserRepository, jobs domain.JobRepository, c *cache.Cache, log *zap.Logger) *LocationService {
	return &LocationService{users: users, jobs: jobs, cache: c, log: log}
}

type UpdateLocationInput struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
}

type CurrentLocation struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *LocationService) UpdateLocation(caller Caller, in UpdateLocationInput) (*CurrentLocation, error) {
	if in.Lat == nil || in.Lng == nil {
		return nil, apperr.BadRequest("Latitude and longitude are required")
	}

	u, err := s.users.FindByID(caller.ID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	now := time.Now()
	u.CurrentLat = in.Lat
	u.CurrentLng = in.Lng
	u.CurrentAddress = in.Address
	if u.CurrentAddress == "" {
		u.CurrentAddress = u.Location // fall back to the profile location
	}
	u.LocationUpdated = &now

	if err := s.users.Update(u); err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	return &CurrentLocation{
		Lat:       *in.Lat,
		Lng:       *in.Lng,
		Address:   u.CurrentAddress,
		UpdatedAt: now,
	}, nil
}

// NearbyJobs returns open jobs inside a fixed ±0.1 degree window
// around the query point, newest first. radiusKm is accepted for
// compatibility but does not narrow the window; each result carries
// its haversine distance from the query point instead.
func (s *LocationService) NearbyJobs(ctx context.Context, lat, lng *float64, radiusKm float64) ([]NearbyJobView, error) {
	if lat == nil || lng == nil {
		return nil, apperr.BadRequest("Latitude and longitude are required")
	}
	origin := geo.Point{Lat: *lat, Lng: *lng}

	load := func(context.Context) ([]NearbyJobView, error) {
		jobs, err := s.jobs.ListOpenInBox(domain.BoundingBox{
			MinLat: origin.Lat - geo.BoxDelta,
			MaxLat: origin.Lat + geo.BoxDelta,
			MinLng: origin.Lng - geo.BoxDelta,
			MaxLng: origin.Lng + geo.BoxDelta,
		})
		if err != nil {
			return nil, apperr.Internal("Server error", err)
		}
		out := make([]NearbyJobView, 0, len(jobs))
		for i := range jobs {
			v := NearbyJobView{JobView: newJobView(&jobs[i])}
			if jobs[i].Lat != nil && jobs[i].Lng != nil {
				v.DistanceKm = geo.Distance(origin, geo.Point{Lat: *jobs[i].Lat, Lng: *jobs[i].Lng})
			}
			out = append(out, v)
		}
		return out, nil
	}

	if s.cache != nil {
		key := fmt.Sprintf("jobs:nearby:%.4f:%.4f", origin.Lat, origin.Lng)
		views, err := cache.GetOrLoadJSON(s.cache, ctx, key, nearbyTTL, load)
		if err == nil {
			return views, nil
		}
		s.log.Warn("nearby cache bypassed", zap.Error(err))
	}
	return load(ctx)
}
