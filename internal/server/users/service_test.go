package users

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/auth"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
	"github.com/rs/zerolog"
)

func newTestService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository()
	logger := logging.NewZerologLogger(zerolog.New(io.Discard))
	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
	return NewService(repo, logger, cfg), repo
}

func TestRegister_ThenLogin(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "alice@x.com", "Pw1!")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected assigned user ID")
	}

	token, err := s.Login(ctx, "alice@x.com", "Pw1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("token verification failed: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token user %q, want %q", userID, user.ID)
	}
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	s, repo := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "alice@x.com", "Pw1!"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	stored, err := repo.GetByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if stored.PasswordHash == "Pw1!" {
		t.Fatal("plaintext password was persisted")
	}
	if !auth.CheckPassword(stored.PasswordHash, "Pw1!") {
		t.Fatal("stored hash does not verify against original plaintext")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"no username", "", "a@x.com", "pw"},
		{"no email", "a", "", "pw"},
		{"no password", "a", "a@x.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.username, tc.email, tc.password)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmailAndUsername(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "alice@x.com", "pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.Register(ctx, "other", "alice@x.com", "pw")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("duplicate email: want ErrorAlreadyExists, got %v", err)
	}

	_, err = s.Register(ctx, "alice", "other@x.com", "pw")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("duplicate username: want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "alice@x.com", "Pw1!"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.Login(ctx, "alice@x.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), "nobody@x.com", "pw")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetCurrentUser_NeverExposesHash(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "alice@x.com", "Pw1!")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := s.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser error: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatal("password hash leaked from GetCurrentUser")
	}
	if got.Username != "alice" || got.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetCurrentUser_UnknownID(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.GetCurrentUser(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdateBio(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "alice@x.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := s.UpdateBio(ctx, user.ID, "hello there"); err != nil {
		t.Fatalf("UpdateBio error: %v", err)
	}

	got, err := s.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser error: %v", err)
	}
	if got.Bio != "hello there" {
		t.Fatalf("bio %q, want %q", got.Bio, "hello there")
	}

	if err := s.UpdateBio(ctx, "missing", "x"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
