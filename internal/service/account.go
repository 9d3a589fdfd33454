package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/auth"
	"github.com/notekeeper/notekeeper/internal/metrics"
	"github.com/notekeeper/notekeeper/internal/model"
	"github.com/notekeeper/notekeeper/internal/repository"
)

// Caller-facing messages.
const (
	msgEmailTaken         = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgUserNotFound       = "User not found"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines input for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// AccountService handles registration, login and profile lookups.
type AccountService struct {
	users    UserStore
	tokens   TokenIssuer
	profiles ProfileCache
	logger   *slog.Logger
	metrics  metrics.Recorder
	now      Clock

	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountOption configures an AccountService.
type AccountOption func(*AccountService)

// WithProfileCache enables the read-through profile cache.
func WithProfileCache(profiles ProfileCache) AccountOption {
	return func(s *AccountService) {
		s.profiles = profiles
	}
}

// WithAccountClock overrides the time source for user timestamps.
func WithAccountClock(now Clock) AccountOption {
	return func(s *AccountService) {
		s.now = now
	}
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserStore, tokens TokenIssuer, logger *slog.Logger, recorder metrics.Recorder, opts ...AccountOption) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &AccountService{
		users:   users,
		tokens:  tokens,
		logger:  logger,
		metrics: recorder,
		now:     systemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the input, creates the user and issues a token.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)

	if fields := validateRegistration(name, email, input.Password); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, apperr.Unexpected("Error registering user", err)
	}
	if exists {
		return nil, apperr.Conflict(msgEmailTaken)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Unexpected("Error registering user", err)
	}

	now := s.now()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, apperr.Conflict(msgEmailTaken)
		}
		return nil, apperr.Unexpected("Error registering user", err)
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, apperr.Unexpected("Error registering user", err)
	}

	s.metrics.IncUserRegistered()
	s.logger.Info("user_registered", slog.String("user_id", user.ID))

	return &AuthResult{Token: token, User: user.ToPublic()}, nil
}

// Login verifies credentials and issues a fresh token.
// Unknown email and wrong password produce the same error.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := NormalizeEmail(input.Email)

	if fields := validateLogin(email, input.Password); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Spend the same bcrypt work as a real comparison.
			_, _ = auth.VerifyPassword(input.Password, s.getDummyHash())
			s.metrics.IncLogin("failed")
			return nil, apperr.Authentication(msgInvalidCredentials)
		}
		return nil, apperr.Unexpected("Error logging in", err)
	}

	match, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Unexpected("Error logging in", err)
	}
	if !match {
		s.metrics.IncLogin("failed")
		return nil, apperr.Authentication(msgInvalidCredentials)
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, apperr.Unexpected("Error logging in", err)
	}

	s.metrics.IncLogin("success")
	s.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return &AuthResult{Token: token, User: user.ToPublic()}, nil
}

// GetProfile returns the profile of the authenticated user.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*model.PublicUser, error) {
	if userID == "" {
		return nil, apperr.Authentication("Authentication required")
	}

	if s.profiles != nil {
		cached, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			s.logger.Warn("profile cache read failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		if cached != nil {
			s.metrics.IncProfileCacheHit()
			profile := cached.ToProfile()
			return &profile, nil
		}
		s.metrics.IncProfileCacheMiss()
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound(msgUserNotFound)
		}
		return nil, apperr.Unexpected("Error fetching profile", err)
	}

	if s.profiles != nil {
		if err := s.profiles.SetProfile(ctx, user); err != nil {
			s.logger.Warn("profile cache write failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	profile := user.ToProfile()
	return &profile, nil
}

func (s *AccountService) issue(user *model.User) (string, error) {
	return s.tokens.Issue(model.Identity{UserID: user.ID, Email: user.Email})
}

// getDummyHash lazily computes a hash used to equalize login timing.
func (s *AccountService) getDummyHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := auth.HashPassword(uuid.NewString())
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
