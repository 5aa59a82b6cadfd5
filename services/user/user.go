package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Login checks that credential proves ownership of email, records the
// sign-in and issues a bearer token for the email.
func (s *DefaultUserService) Login(ctx context.Context, email, credential string) (*AuthResponse, error) {
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(credential) == "" {
		return nil, ErrMissingCredential
	}
	if s.Identity == nil {
		return nil, ErrIdentityRejected
	}
	verified, err := s.Identity.VerifyEmail(ctx, credential)
	if err != nil {
		zap.L().Info("identity credential rejected", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrIdentityRejected, err)
	}
	if !strings.EqualFold(verified, email) {
		zap.L().Warn("identity credential belongs to another account", zap.String("email", email))
		return nil, fmt.Errorf("%w: credential does not match %s", ErrIdentityRejected, email)
	}

	usr, err := s.Repo.Upsert(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to record user: %w", err)
	}
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	token, err := utils.GenerateToken(email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Result: usr, Token: token}, nil
}

// GetAllUsers lists every user.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// MakeAdmin elevates the user and drops any cached role.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*models.User, error) {
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	usr, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to elevate user: %w", err)
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, utils.RoleCachePrefix+email).Err(); err != nil {
			zap.L().Warn("failed to invalidate role cache", zap.String("email", email), zap.Error(err))
		}
	}
	return usr, nil
}

// IsAdmin reports whether the email holds the admin role, reading through the role cache.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	cacheKey := utils.RoleCachePrefix + email

	if s.Cache != nil {
		role, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return role == models.RoleAdmin, nil
		}
		if err != redis.Nil {
			zap.L().Warn("role cache read failed, falling back to DB", zap.Error(err))
		}
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user role: %w", err)
	}
	role := ""
	if usr != nil {
		role = usr.Role
	}

	if s.Cache != nil {
		_ = s.Cache.Set(ctx, cacheKey, role, utils.RoleCacheTTL).Err()
	}
	return role == models.RoleAdmin, nil
}
