package service

import (
	"time"

	"gigboard/internal/domain"
)

// Caller is the authenticated identity threaded through every
// protected operation, extracted from the verified token.
type Caller struct {
	ID       string
	UserType string
}

func (c Caller) IsRecruiter() bool { return c.UserType == domain.UserTypeRecruiter }
func (c Caller) IsWorker() bool    { return c.UserType == domain.UserTypeWorker }

type VolunteerSlots struct {
	Total  int `json:"total"`
	Filled int `json:"filled"`
}

type ApplicationView struct {
	ApplicantID string             `json:"applicantId"`
	Applicant   *domain.PublicUser `json:"user,omitempty"`
	Status      string             `json:"status"`
	AppliedAt   time.Time          `json:"appliedAt"`
}

// JobView is the wire shape of a job: the document plus resolved
// identities and the volunteer slot counters.
type JobView struct {
	domain.Job
	Recruiter      *domain.PublicUser `json:"recruiter,omitempty"`
	VolunteerSlots VolunteerSlots     `json:"volunteerSlots"`
	Applicants     []ApplicationView  `json:"applicants"`
}

// AppliedJobView carries the worker's own application state as
// denormalized fields next to the job.
type AppliedJobView struct {
	JobView
	ApplicationStatus string    `json:"applicationStatus"`
	ApplicationDate   time.Time `json:"applicationDate"`
}

type NearbyJobView struct {
	JobView
	DistanceKm float64 `json:"distanceKm"`
}

func newJobView(j *domain.Job) JobView {
	v := JobView{
		Job: *j,
		VolunteerSlots: VolunteerSlots{
			Total:  j.VolunteerTotal,
			Filled: j.VolunteerFilled,
		},
		Applicants: make([]ApplicationView, 0, len(j.Applications)),
	}
	if j.Recruiter != nil {
		pu := j.Recruiter.Public()
		v.Recruiter = &pu
	}
	for _, a := range j.Applications {
		av := ApplicationView{
			ApplicantID: a.ApplicantID,
			Status:      a.Status,
			AppliedAt:   a.AppliedAt,
		}
		if a.Applicant != nil {
			pu := a.Applicant.Public()
			av.Applicant = &pu
		}
		v.Applicants = append(v.Applicants, av)
	}
	return v
}

func newJobViews(jobs []domain.Job) []JobView {
	out := make([]JobView, 0, len(jobs))
	for i := range jobs {
		out = append(out, newJobView(&jobs[i]))
	}
	return out
}
