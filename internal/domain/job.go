package domain

import "time"

const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in-progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

type Job struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Slug        string   `gorm:"size:191;index" json:"slug"`
	Title       string   `gorm:"size:191;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Category    string   `gorm:"size:64;not null;index" json:"category"`
	Wage        float64  `gorm:"not null;default:0" json:"wage"`
	Location    string   `gorm:"size:191;not null" json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`

	RecruiterID string `gorm:"size:36;not null;index" json:"recruiterId"`
	Recruiter   *User  `gorm:"foreignKey:RecruiterID" json:"-"`

	IsUrgent        bool   `gorm:"not null;default:false" json:"isUrgent"`
	IsVolunteer     bool   `gorm:"not null;default:false" json:"isVolunteer"`
	VolunteerTotal  int    `gorm:"not null;default:0" json:"-"`
	VolunteerFilled int    `gorm:"not null;default:0" json:"-"`
	Status          string `gorm:"size:16;not null;default:open;index" json:"status"`

	DatePosted   time.Time     `gorm:"autoCreateTime;index" json:"datePosted"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Job) TableName() string { return "jobs" }

// Application is owned by its job. One application per applicant.
type Application struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	JobID       string    `gorm:"size:36;not null;index;uniqueIndex:idx_applications_pair,priority:1" json:"-"`
	ApplicantID string    `gorm:"size:36;not null;uniqueIndex:idx_applications_pair,priority:2" json:"applicantId"`
	Applicant   *User     `gorm:"foreignKey:ApplicantID" json:"-"`
	Status      string    `gorm:"size:16;not null;default:pending" json:"status"`
	AppliedAt   time.Time `gorm:"autoCreateTime" json:"appliedAt"`
}

func (Application) TableName() string { return "applications" }

// JobFilter predicates are ANDed; nil fields impose no constraint.
type JobFilter struct {
	Category    string
	Location    string
	MinWage     *float64
	MaxWage     *float64
	IsUrgent    *bool
	IsVolunteer *bool
}

func (f JobFilter) Empty() bool {
	return f.Category == "" && f.Location == "" && f.MinWage == nil &&
		f.MaxWage == nil && f.IsUrgent == nil && f.IsVolunteer == nil
}

// BoundingBox is the coarse proximity window used by nearby lookups.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

type JobRepository interface {
	Create(j *Job) error
	FindByID(id string) (*Job, error)
	FindByIDResolved(id string) (*Job, error)
	List(f JobFilter) ([]Job, error)
	ListByRecruiter(recruiterID string) ([]Job, error)
	ListAppliedBy(applicantID string) ([]Job, error)
	ListOpenInBox(box BoundingBox) ([]Job, error)
	ListPaged(offset, limit int, status string) ([]Job, int64, error)
	Update(j *Job) error
	Delete(id string) error
	AddApplication(jobID string, a *Application) error
	UpdateApplication(a *Application) error
}
