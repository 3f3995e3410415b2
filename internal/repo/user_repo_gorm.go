package repo

import (
	"errors"

	"gorm.io/gorm"

	"gigboard/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByIDWithReviews(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at asc")
	}).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) Update(u *domain.User) error { return r.db.Save(u).Error }

func (r *UserRepo) ListAvailableWorkers() ([]domain.User, error) {
	var users []domain.User
	err := r.db.
		Where("user_type = ? AND available_now = ?", domain.UserTypeWorker, true).
		Order("rating desc").
		Find(&users).Error
	return users, err
}

func (r *UserRepo) List(offset, limit int, q string) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// AddReview inserts the review and moves the aggregate rating in one
// transaction; the unique (reviewee, reviewer) index closes the
// duplicate-review race.
func (r *UserRepo) AddReview(revieweeID string, rv *domain.Review, newRating float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}
		return tx.Model(&domain.User{}).
			Where("id = ?", revieweeID).
			Update("rating", newRating).Error
	})
}
