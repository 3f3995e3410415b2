package domain

import (
	"strings"
	"time"
)

const (
	UserTypeWorker    = "worker"
	UserTypeRecruiter = "recruiter"
)

type User struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string  `gorm:"size:64;not null" json:"firstName"`
	LastName     string  `gorm:"size:64;not null" json:"lastName"`
	Email        string  `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string  `gorm:"size:191;not null" json:"-"`
	UserType     string  `gorm:"size:16;not null" json:"userType"` // "worker"/"recruiter", fixed at registration
	Location     string  `gorm:"size:191" json:"location"`
	Skills       string  `gorm:"size:512" json:"skills"`
	Experience   string  `gorm:"type:text" json:"experience"`
	AvailableNow bool    `gorm:"not null;default:false" json:"availableNow"`
	Rating       float64 `gorm:"not null;default:0" json:"rating"`

	CurrentLat      *float64   `json:"currentLat,omitempty"`
	CurrentLng      *float64   `json:"currentLng,omitempty"`
	CurrentAddress  string     `gorm:"size:255" json:"currentAddress,omitempty"`
	LocationUpdated *time.Time `json:"locationUpdatedAt,omitempty"`

	Reviews []Review `gorm:"foreignKey:RevieweeID" json:"reviews,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Review is owned by the reviewed user. One review per reviewer.
type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	RevieweeID string    `gorm:"size:36;not null;index;uniqueIndex:idx_reviews_pair,priority:1" json:"-"`
	ReviewerID string    `gorm:"size:36;not null;uniqueIndex:idx_reviews_pair,priority:2" json:"reviewer"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Review) TableName() string { return "reviews" }

// PublicUser is the identity view embedded in job responses.
type PublicUser struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Rating    float64 `json:"rating"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Rating:    u.Rating,
	}
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByIDWithReviews(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
	ListAvailableWorkers() ([]User, error)
	List(offset, limit int, q string) ([]User, int64, error)
	AddReview(revieweeID string, rv *Review, newRating float64) error
}
