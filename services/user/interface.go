package user

import (
	"context"
	"errors"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
)

var (
	ErrInvalidEmail      = errors.New("a valid email is required")
	ErrMissingCredential = errors.New("identity credential is required")
	ErrIdentityRejected  = errors.New("identity credential rejected")
)

// IdentityVerifier resolves an upstream identity credential to the email it
// proves ownership of.
type IdentityVerifier interface {
	VerifyEmail(ctx context.Context, credential string) (string, error)
}

type UserService interface {
	Login(ctx context.Context, email, credential string) (*AuthResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	MakeAdmin(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// DefaultUserService is the production implementation. Cache may be nil;
// a nil Identity rejects every login.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Identity IdentityVerifier
	Cache    *redis.Client
	TokenTTL time.Duration
}

// AuthResponse contains the user record and a freshly issued token.
type AuthResponse struct {
	Result *models.User `json:"result"`
	Token  string       `json:"token"`
}
