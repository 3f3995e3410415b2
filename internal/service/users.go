package service

import (
	"time"

	"go.uber.org/zap"

	"gigboard/internal/apperr"
	"gigboard/internal/domain"
	"gigboard/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Profile(caller Caller) (*domain.User, error) {
	u, err := s.users.FindByIDWithReviews(caller.ID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// UpdateProfileInput allow-lists the editable profile fields; email,
// userType and rating are not among them.
type UpdateProfileInput struct {
	FirstName  *string `json:"firstName" binding:"omitempty,max=64"`
	LastName   *string `json:"lastName" binding:"omitempty,max=64"`
	Location   *string `json:"location" binding:"omitempty,max=191"`
	Skills     *string `json:"skills" binding:"omitempty,max=512"`
	Experience *string `json:"experience"`
}

func (s *UserService) UpdateProfile(caller Caller, in UpdateProfileInput) (*domain.User, error) {
	u, err := s.users.FindByID(caller.ID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Location != nil {
		u.Location = *in.Location
	}
	if in.Skills != nil {
		u.Skills = *in.Skills
	}
	if in.Experience != nil {
		u.Experience = *in.Experience
	}

	if err := s.users.Update(u); err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	return u, nil
}

func (s *UserService) ToggleAvailability(caller Caller) (bool, error) {
	if !caller.IsWorker() {
		return false, apperr.Forbidden("Only workers can set availability")
	}
	u, err := s.users.FindByID(caller.ID)
	if err != nil {
		return false, apperr.Internal("Server error", err)
	}
	if u == nil {
		return false, apperr.NotFound("User not found")
	}

	u.AvailableNow = !u.AvailableNow
	if err := s.users.Update(u); err != nil {
		return false, apperr.Internal("Server error", err)
	}
	return u.AvailableNow, nil
}

func (s *UserService) AvailableWorkers() ([]domain.User, error) {
	workers, err := s.users.ListAvailableWorkers()
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	return workers, nil
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

// AddReview appends a review and recomputes the target's rating as the
// mean over all reviews, the new one included.
func (s *UserService) AddReview(caller Caller, targetID string, in ReviewInput) (*domain.User, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.BadRequest("Rating must be between 1 and 5")
	}

	target, err := s.users.FindByIDWithReviews(targetID)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if target == nil {
		return nil, apperr.NotFound("User not found")
	}
	for _, rv := range target.Reviews {
		if rv.ReviewerID == caller.ID {
			return nil, apperr.Conflict("You have already reviewed this user")
		}
	}

	rv := &domain.Review{
		ID:         utils.NewID(),
		RevieweeID: targetID,
		ReviewerID: caller.ID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now(),
	}
	sum := in.Rating
	for _, r := range target.Reviews {
		sum += r.Rating
	}
	newRating := float64(sum) / float64(len(target.Reviews)+1)

	if err := s.users.AddReview(targetID, rv, newRating); err != nil {
		// Duplicate reviewers racing past the scan land on the unique
		// (reviewee, reviewer) index.
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("You have already reviewed this user")
		}
		return nil, apperr.Internal("Server error", err)
	}

	target.Reviews = append(target.Reviews, *rv)
	target.Rating = newRating
	return target, nil
}
