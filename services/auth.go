package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailyink/blog-backend/database"
	"github.com/dailyink/blog-backend/errs"
	"github.com/dailyink/blog-backend/models"
)

// AuthService is the credential store: it owns registration and password
// verification. Session issuance lives in the api layer; this service only
// decides who a set of credentials belongs to.
type AuthService struct {
	users  *database.UserRepo
	logger zerolog.Logger
}

func NewAuthService(users *database.UserRepo) *AuthService {
	return &AuthService{
		users:  users,
		logger: log.With().Str("serviceName", "authService").Logger(),
	}
}

// NormalizeEmail lowercases an email address. Every lookup and every insert
// goes through this, so two registrations differing only in case collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The duplicate check is an explicit query
// before the insert, not just the unique index, so the caller gets a
// DuplicateEmail error it can surface on the form. The admin role is granted
// only when the actor is already an authenticated admin; an anonymous or
// commentor actor always produces a commentor.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string, actor *models.User) (*models.User, error) {
	normalized := NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, errs.NewDuplicateEmail(normalized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalError("failed to hash password")
	}

	role := models.RoleCommentor
	if actor.IsAdmin() {
		role = models.RoleAdmin
	}

	user := &models.User{
		UserID:       newExternalID(),
		Email:        normalized,
		Name:         name,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	s.logger.Info().Str("email", normalized).Str("role", role).Msg("registered user")
	return user, nil
}

// Authenticate verifies a credential pair and returns the matching user.
func (s *AuthService) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	normalized := NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewUserNotFound()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errs.NewWrongPassword()
		}
		return nil, errs.NewInternalError("failed to compare password hash")
	}

	return user, nil
}

// EnsureAdmin seeds the bootstrap admin account if it does not exist yet.
// This is the out-of-band path for the very first admin; afterwards admins
// are created through Register by an already-authenticated admin.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, rawPassword string) (*models.User, error) {
	normalized := NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalError("failed to hash password")
	}

	admin := &models.User{
		UserID:       newExternalID(),
		Email:        normalized,
		Name:         name,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := s.users.Add(ctx, admin); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	s.logger.Info().Str("email", normalized).Msg("seeded bootstrap admin")
	return admin, nil
}

// newExternalID mints the public identifier posts and comments reference.
// Hex form without dashes, matching the historical format of stored rows.
func newExternalID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
