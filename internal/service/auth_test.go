package service

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"gigboard/internal/apperr"
	"gigboard/internal/core/auth"
	"gigboard/internal/domain"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte("gigboard_test_secret_1234567890"),
		Issuer: "gigboard-test",
		TTL:    7 * 24 * time.Hour,
	}
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewAuthService(users, testJWTer(), zap.NewNop()), users
}

func register(t *testing.T, s *AuthService, email, userType string) *AuthResult {
	t.Helper()
	out, err := s.Register(RegisterInput{
		FirstName: "Ada",
		LastName:  "Okafor",
		Email:     email,
		Password:  "Secret123",
		UserType:  userType,
		Location:  "Lagos",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return out
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	s, _ := newTestAuthService()

	out := register(t, s, "ada@example.com", domain.UserTypeWorker)
	if out.Token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := testJWTer().Parse(out.Token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != out.User.ID {
		t.Fatalf("token uid = %q, want %q", claims.UserID, out.User.ID)
	}
	if claims.UserType != domain.UserTypeWorker {
		t.Fatalf("token userType = %q, want worker", claims.UserType)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Fatalf("token ttl = %v, want about 7 days", ttl)
	}
}

func TestRegisterNeverSerializesPassword(t *testing.T) {
	s, _ := newTestAuthService()
	out := register(t, s, "ada@example.com", domain.UserTypeWorker)

	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(b), out.User.PasswordHash) {
		t.Fatal("password hash leaked into the response body")
	}
	if out.User.PasswordHash == "Secret123" {
		t.Fatal("password stored in the clear")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, users := newTestAuthService()
	first := register(t, s, "ada@example.com", domain.UserTypeWorker)

	_, err := s.Register(RegisterInput{
		FirstName: "Impostor",
		LastName:  "User",
		Email:     "ada@example.com",
		Password:  "Other456",
		UserType:  domain.UserTypeRecruiter,
		Location:  "Abuja",
	})
	if err == nil {
		t.Fatal("expected conflict")
	}
	if got := apperr.Status(err); got != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}

	stored, _ := users.FindByID(first.User.ID)
	if stored == nil || stored.UserType != domain.UserTypeWorker {
		t.Fatal("first account was disturbed by the duplicate registration")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := newTestAuthService()
	register(t, s, "ada@example.com", domain.UserTypeWorker)

	_, errUnknown := s.Login(LoginInput{Email: "nobody@example.com", Password: "Secret123"})
	_, errWrongPw := s.Login(LoginInput{Email: "ada@example.com", Password: "wrong"})

	for _, err := range []error{errUnknown, errWrongPw} {
		if err == nil {
			t.Fatal("expected login to fail")
		}
		if got := apperr.Status(err); got != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", got)
		}
	}
	// unknown email and wrong password must be indistinguishable
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLoginSuccess(t *testing.T) {
	s, _ := newTestAuthService()
	register(t, s, "ada@example.com", domain.UserTypeRecruiter)

	out, err := s.Login(LoginInput{Email: "Ada@Example.com", Password: "Secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := testJWTer().Parse(out.Token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserType != domain.UserTypeRecruiter {
		t.Fatalf("token userType = %q, want recruiter", claims.UserType)
	}
}
