package service

import (
	"errors"
	"sort"
	"strings"

	"gigboard/internal/domain"
)

// errDup mimics the drivers' unique-violation message so the services'
// duplicate-key detection sees the same thing tests and production do.
var errDup = errors.New("duplicate key value violates unique constraint")

var (
	_ domain.UserRepository = (*fakeUserRepo)(nil)
	_ domain.JobRepository  = (*fakeJobRepo)(nil)
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return errDup
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByIDWithReviews(id string) (*domain.User, error) {
	return r.FindByID(id)
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListAvailableWorkers() ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.UserType == domain.UserTypeWorker && u.AvailableNow {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(offset, limit int, q string) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) AddReview(revieweeID string, rv *domain.Review, newRating float64) error {
	u, ok := r.users[revieweeID]
	if !ok {
		return errors.New("no such user")
	}
	for _, e := range u.Reviews {
		if e.ReviewerID == rv.ReviewerID {
			return errDup
		}
	}
	u.Reviews = append(u.Reviews, *rv)
	u.Rating = newRating
	return nil
}

type fakeJobRepo struct {
	jobs    map[string]*domain.Job
	lastBox domain.BoundingBox
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *fakeJobRepo) Create(j *domain.Job) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	cp.Applications = append([]domain.Application(nil), j.Applications...)
	return &cp, nil
}

func (r *fakeJobRepo) FindByIDResolved(id string) (*domain.Job, error) {
	return r.FindByID(id)
}

func (r *fakeJobRepo) sorted() []domain.Job {
	var out []domain.Job
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].DatePosted.After(out[k].DatePosted) })
	return out
}

func (r *fakeJobRepo) List(f domain.JobFilter) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.sorted() {
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		if f.Location != "" && j.Location != f.Location {
			continue
		}
		if f.MinWage != nil && j.Wage < *f.MinWage {
			continue
		}
		if f.MaxWage != nil && j.Wage > *f.MaxWage {
			continue
		}
		if f.IsUrgent != nil && j.IsUrgent != *f.IsUrgent {
			continue
		}
		if f.IsVolunteer != nil && j.IsVolunteer != *f.IsVolunteer {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListByRecruiter(recruiterID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.sorted() {
		if j.RecruiterID == recruiterID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListAppliedBy(applicantID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.sorted() {
		for _, a := range j.Applications {
			if a.ApplicantID == applicantID {
				cp := j
				cp.Applications = []domain.Application{a}
				out = append(out, cp)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListOpenInBox(box domain.BoundingBox) ([]domain.Job, error) {
	r.lastBox = box
	var out []domain.Job
	for _, j := range r.sorted() {
		if j.Status != domain.JobStatusOpen || j.Lat == nil || j.Lng == nil {
			continue
		}
		if *j.Lat < box.MinLat || *j.Lat > box.MaxLat || *j.Lng < box.MinLng || *j.Lng > box.MaxLng {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListPaged(offset, limit int, status string) ([]domain.Job, int64, error) {
	out := r.sorted()
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) Update(j *domain.Job) error {
	stored, ok := r.jobs[j.ID]
	if !ok {
		return errors.New("no such job")
	}
	apps := stored.Applications
	cp := *j
	cp.Applications = apps
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) AddApplication(jobID string, a *domain.Application) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return errors.New("no such job")
	}
	for _, e := range j.Applications {
		if e.ApplicantID == a.ApplicantID {
			return errDup
		}
	}
	a.JobID = jobID
	j.Applications = append(j.Applications, *a)
	return nil
}

func (r *fakeJobRepo) UpdateApplication(a *domain.Application) error {
	j, ok := r.jobs[a.JobID]
	if !ok {
		return errors.New("no such job")
	}
	for i := range j.Applications {
		if j.Applications[i].ApplicantID == a.ApplicantID {
			j.Applications[i] = *a
			return nil
		}
	}
	return errors.New("no such application")
}
