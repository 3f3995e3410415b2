package service

import (
	"strings"

	"go.uber.org/zap"

	"gigboard/internal/apperr"
	"gigboard/internal/core/auth"
	"gigboard/internal/domain"
	"gigboard/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log}
}

type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required,max=64"`
	LastName  string `json:"lastName" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	UserType  string `json:"userType" binding:"required,oneof=worker recruiter"`
	Location  string `json:"location" binding:"required,max=191"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		UserType:     in.UserType,
		Location:     in.Location,
	}
	if err := s.users.Create(u); err != nil {
		// Two concurrent registrations can both pass the lookup; the
		// unique index on email decides the loser.
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Internal("Server error", err)
	}

	token, err := s.jwter.Issue(u.ID, u.UserType)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	s.log.Info("user registered", zap.String("user_id", u.ID), zap.String("user_type", u.UserType))
	return &AuthResult{Token: token, User: u}, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login answers the same message for an unknown email and a wrong
// password, so callers cannot probe which addresses hold accounts.
func (s *AuthService) Login(in LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		return nil, apperr.BadRequest("Invalid credentials")
	}

	token, err := s.jwter.Issue(u.ID, u.UserType)
	if err != nil {
		return nil, apperr.Internal("Server error", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}
