package service

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"gigboard/internal/apperr"
	"gigboard/internal/core/cache"
	"gigboard/internal/domain"
	"gigboard/pkg/utils"
)

const (
	jobCachePrefix = "jobs:"
	jobListKey     = "jobs:list:all"
	jobListTTL     = 30 * time.Second
)

type JobService struct {
	jobs  domain.JobRepository
	cache *cache.Cache // optional
	log   *zap.Logger
}

func NewJobService(jobs domain.JobRepository, c *cache.Cache, log *zap.Logger) *JobService {
	return &JobService{jobs: jobs, cache: c, log: log}
}

// List returns jobs newest first. The unfiltered listing is the hot
// landing-page query, so it is served through the cache.
func (s *JobService) List(ctx context.Context, f domain.JobFilter) ([]JobView, error) {
	load := func(context.Context) ([]JobView, error) {
		jobs, err := s.jobs.List(f)
		if err != nil {
			return nil, apperr.Internal("Server error", err)
		}
		return newJobViews(jobs), nil
	}
	if s.cache != nil && f.Empty() {
		views, err := cache.GetOrLoadJSON(s.cache, ctx, jobListKey, jobListTTL, load)
		if err == nil {
			return views, nil
		}
		s.log.Warn("job list cache bypassed", zap.Error(err))
	}
	return load(ctx)
}

func (s *JobService) Get(id string) (*JobView, error) {
	j, err := s.jobs.FindByIDResolved(id)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if j == nil {
		return nil, apperr.NotFound("Job not found")
	}
	v := newJobView(j)
	return &v, nil
}

type CreateJobInput struct {
	Title       string          `json:"title" binding:"required,max=191"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required,max=64"`
	Wage        *float64        `json:"wage" binding:"omitempty,min=0"`
	Location    string          `json:"location" binding:"required,max=191"`
	Lat         *float64        `json:"lat"`
	Lng         *float64        `json:"lng"`
	IsUrgent    *bool           `json:"isUrgent"`
	IsVolunteer *bool           `json:"isVolunteer"`
	Slots       *VolunteerSlots `json:"volunteerSlots"`
}

func (s *JobService) Create(ctx context.Context, caller Caller, in CreateJobInput) (*JobView, error) {
	if !caller.IsRecruiter() {
		return nil, apperr.Forbidden("Only recruiters can post jobs")
	}
	isVolunteer := in.IsVolunteer != nil && *in.IsVolunteer
	// a paid job must state its wage; volunteer jobs implicitly pay 0
	if in.Wage == nil && !isVolunteer {
		return nil, apperr.BadRequest("Wage is required for paid jobs")
	}

	j := &domain.Job{
		ID:          utils.NewID(),
		Slug:        slug.Make(in.Title),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Lat:         in.Lat,
		Lng:         in.Lng,
		RecruiterID: caller.ID,
		IsVolunteer: isVolunteer,
		Status:      domain.JobStatusOpen,
		DatePosted:  time.Now(),
	}
	if in.Wage != nil {
		j.Wage = *in.Wage
	}
	if in.IsUrgent != nil {
		j.IsUrgent = *in.IsUrgent
	}
	if in.Slots != nil {
		j.VolunteerTotal = in.Slots.Total
		j.VolunteerFilled = in.Slots.Filled
	}

	if err := s.jobs.Create(j); err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	s.invalidate(ctx)
	s.log.Info("job created",
		zap.String("job_id", j.ID),
		zap.String("recruiter_id", caller.ID),
		zap.String("category", j.Category))
	v := newJobView(j)
	return &v, nil
}

// UpdateJobInput is the allow-list of patchable fields; anything else
// in the request body is dropped.
type UpdateJobInput struct {
	Title       *string         `json:"title" binding:"omitempty,max=191"`
	Description *string         `json:"description"`
	Category    *string         `json:"category" binding:"omitempty,max=64"`
	Wage        *float64        `json:"wage" binding:"omitempty,min=0"`
	Location    *string         `json:"location" binding:"omitempty,max=191"`
	Lat         *float64        `json:"lat"`
	Lng         *float64        `json:"lng"`
	IsUrgent    *bool           `json:"isUrgent"`
	IsVolunteer *bool           `json:"isVolunteer"`
	Slots       *VolunteerSlots `json:"volunteerSlots"`
	Status      *string         `json:"status"`
}

func (s *JobService) Update(ctx context.Context, caller Caller, id string, in UpdateJobInput) (*JobView, error) {
	j, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if j == nil {
		return nil, apperr.NotFound("Job not found")
	}
	if j.RecruiterID != caller.ID {
		return nil, apperr.Forbidden("Not authorized")
	}

	if in.Title != nil {
		j.Title = *in.Title
		j.Slug = slug.Make(*in.Title)
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Category != nil {
		j.Category = *in.Category
	}
	if in.Wage != nil {
		j.Wage = *in.Wage
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.Lat != nil {
		j.Lat = in.Lat
	}
	if in.Lng != nil {
		j.Lng = in.Lng
	}
	if in.IsUrgent != nil {
		j.IsUrgent = *in.IsUrgent
	}
	if in.IsVolunteer != nil {
		j.IsVolunteer = *in.IsVolunteer
	}
	if in.Slots != nil {
		j.VolunteerTotal = in.Slots.Total
		j.VolunteerFilled = in.Slots.Filled
	}
	if in.Status != nil {
		if !domain.ValidJobStatus(*in.Status) {
			return nil, apperr.BadRequest("Invalid job status")
		}
		j.Status = *in.Status
	}

	if err := s.jobs.Update(j); err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	s.invalidate(ctx)
	v := newJobView(j)
	return &v, nil
}

func (s *JobService) Delete(ctx context.Context, caller Caller, id string) error {
	j, err := s.jobs.FindByID(id)
	if err != nil {
		return apperr.Internal("Server error", err)
	}
	if j == nil {
		return apperr.NotFound("Job not found")
	}
	if j.RecruiterID != caller.ID {
		return apperr.Forbidden("Not authorized")
	}
	if err := s.jobs.Delete(id); err != nil {
		return apperr.Internal("Server error", err)
	}
	s.invalidate(ctx)
	s.log.Info("job deleted", zap.String("job_id", id), zap.String("recruiter_id", caller.ID))
	return nil
}

func (s *JobService) Apply(ctx context.Context, caller Caller, id string) (*JobView, error) {
	j, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if j == nil {
		return nil, apperr.NotFound("Job not found")
	}
	if j.Status != domain.JobStatusOpen {
		return nil, apperr.BadRequest("This job is no longer accepting applications")
	}
	for _, a := range j.Applications {
		if a.ApplicantID == caller.ID {
			return nil, apperr.Conflict("You have already applied for this job")
		}
	}

	a := &domain.Application{
		ID:          utils.NewID(),
		ApplicantID: caller.ID,
		Status:      domain.ApplicationPending,
		AppliedAt:   time.Now(),
	}
	if err := s.jobs.AddApplication(j.ID, a); err != nil {
		// Concurrent applies both pass the scan above; the unique
		// (job, applicant) index rejects the second insert.
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("You have already applied for this job")
		}
		return nil, apperr.Internal("Server error", err)
	}
	s.invalidate(ctx)

	j.Applications = append(j.Applications, *a)
	v := newJobView(j)
	return &v, nil
}

func (s *JobService) SetApplicationStatus(ctx context.Context, caller Caller, jobID, applicantID, status string) (*JobView, error) {
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return nil, apperr.BadRequest("Status must be accepted or rejected")
	}

	j, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if j == nil {
		return nil, apperr.NotFound("Job not found")
	}
	if j.RecruiterID != caller.ID {
		return nil, apperr.Forbidden("Not authorized")
	}

	var app *domain.Application
	for i := range j.Applications {
		if j.Applications[i].ApplicantID == applicantID {
			app = &j.Applications[i]
			break
		}
	}
	if app == nil {
		return nil, apperr.NotFound("Application not found")
	}

	app.Status = status
	if err := s.jobs.UpdateApplication(app); err != nil {
		return nil, apperr.Internal("Server error", err)
	}

	if status == domain.ApplicationAccepted && j.IsVolunteer {
		j.VolunteerFilled++
		if err := s.jobs.Update(j); err != nil {
			return nil, apperr.Internal("Server error", err)
		}
		// The counter has no cap; surface overfill without blocking it.
		if j.VolunteerTotal > 0 && j.VolunteerFilled > j.VolunteerTotal {
			s.log.Warn("volunteer slots overfilled",
				zap.String("job_id", j.ID),
				zap.Int("filled", j.VolunteerFilled),
				zap.Int("total", j.VolunteerTotal))
		}
	}
	s.invalidate(ctx)

	v := newJobView(j)
	return &v, nil
}

func (s *JobService) ListByRecruiter(caller Caller) ([]JobView, error) {
	if !caller.IsRecruiter() {
		return nil, apperr.Forbidden("Only recruiters can view their posted jobs")
	}
	jobs, err := s.jobs.ListByRecruiter(caller.ID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	return newJobViews(jobs), nil
}

func (s *JobService) ListAppliedBy(caller Caller) ([]AppliedJobView, error) {
	if !caller.IsWorker() {
		return nil, apperr.Forbidden("Only workers can view their applications")
	}
	jobs, err := s.jobs.ListAppliedBy(caller.ID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	out := make([]AppliedJobView, 0, len(jobs))
	for i := range jobs {
		av := AppliedJobView{JobView: newJobView(&jobs[i])}
		if len(jobs[i].Applications) > 0 {
			av.ApplicationStatus = jobs[i].Applications[0].Status
			av.ApplicationDate = jobs[i].Applications[0].AppliedAt
		}
		out = append(out, av)
	}
	return out, nil
}

func (s *JobService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, jobCachePrefix); err != nil {
		s.log.Warn("job cache invalidation failed", zap.Error(err))
	}
}
