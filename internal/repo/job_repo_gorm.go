package repo

import (
	"errors"

	"gorm.io/gorm"

	"gigboard/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(j *domain.Job) error { return r.db.Create(j).Error }

func (r *JobRepo) FindByID(id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.Preload("Applications", applicationOrder).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

// FindByIDResolved also loads recruiter and applicant identities for
// display.
func (r *JobRepo) FindByIDResolved(id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.
		Preload("Recruiter").
		Preload("Applications", applicationOrder).
		Preload("Applications.Applicant").
		First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

func (r *JobRepo) List(f domain.JobFilter) ([]domain.Job, error) {
	tx := r.db.Preload("Recruiter")
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		tx = tx.Where("location = ?", f.Location)
	}
	if f.MinWage != nil {
		tx = tx.Where("wage >= ?", *f.MinWage)
	}
	if f.MaxWage != nil {
		tx = tx.Where("wage <= ?", *f.MaxWage)
	}
	if f.IsUrgent != nil {
		tx = tx.Where("is_urgent = ?", *f.IsUrgent)
	}
	if f.IsVolunteer != nil {
		tx = tx.Where("is_volunteer = ?", *f.IsVolunteer)
	}
	var jobs []domain.Job
	err := tx.Order("date_posted desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ListByRecruiter(recruiterID string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.
		Preload("Applications", applicationOrder).
		Preload("Applications.Applicant").
		Where("recruiter_id = ?", recruiterID).
		Order("date_posted desc").
		Find(&jobs).Error
	return jobs, err
}

// ListAppliedBy returns the jobs holding an application from the
// worker, with only that worker's application preloaded.
func (r *JobRepo) ListAppliedBy(applicantID string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.
		Preload("Recruiter").
		Preload("Applications", "applicant_id = ?", applicantID).
		Where("id IN (?)", r.db.Model(&domain.Application{}).
			Select("job_id").
			Where("applicant_id = ?", applicantID)).
		Order("date_posted desc").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ListOpenInBox(box domain.BoundingBox) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.
		Preload("Recruiter").
		Where("status = ?", domain.JobStatusOpen).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Where("lat >= ? AND lat <= ?", box.MinLat, box.MaxLat).
		Where("lng >= ? AND lng <= ?", box.MinLng, box.MaxLng).
		Order("date_posted desc").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ListPaged(offset, limit int, status string) ([]domain.Job, int64, error) {
	tx := r.db.Model(&domain.Job{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var jobs []domain.Job
	if err := tx.Offset(offset).Limit(limit).Order("date_posted desc").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepo) Update(j *domain.Job) error {
	return r.db.Omit("Applications", "Recruiter").Save(j).Error
}

func (r *JobRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Job{}, "id = ?", id).Error
	})
}

func (r *JobRepo) AddApplication(jobID string, a *domain.Application) error {
	a.JobID = jobID
	return r.db.Create(a).Error
}

func (r *JobRepo) UpdateApplication(a *domain.Application) error {
	return r.db.Omit("Applicant").Save(a).Error
}

func applicationOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("applied_at asc")
}
