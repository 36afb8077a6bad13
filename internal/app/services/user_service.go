package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
	EnsureUserExists(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	hasher   *auth.PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository, hasher *auth.PasswordHasher, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// GetAllUsers returns every user ordered by id
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// GetUserByID retrieves a user by id
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return s.userRepo.FindByID(ctx, id)
}

// CreateUser stores a new user with a hashed password
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User created")
	return user, nil
}

// UpdateUser writes the fields present in req. A supplied password is
// hashed before it is stored.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if err := s.EnsureUserExists(ctx, id); err != nil {
		return err
	}

	fields := models.Fields{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return apperrors.NewValidationError("name cannot be empty")
		}
		fields[models.ColumnName] = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		owner, err := s.userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil && owner.ID != id:
			return apperrors.ErrEmailAlreadyExists
		case err != nil && !errors.Is(err, apperrors.ErrUserNotFound):
			return fmt.Errorf("failed to check email: %w", err)
		}
		fields[models.ColumnEmail] = email
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return err
		}
		fields[models.ColumnPassword] = hash
	}

	if len(fields) == 0 {
		return nil
	}
	fields[models.ColumnUpdatedAt] = time.Now().UTC()

	if err := s.userRepo.UpdateFields(ctx, id, fields); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrEmailAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info().Int64("userID", id).Int("fields", len(fields)-1).Msg("User updated")
	return nil
}

// DeleteUser removes a user
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if err := s.EnsureUserExists(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

// EnsureUserExists returns ErrUserNotFound unless a user with id is stored
func (s *userServiceImpl) EnsureUserExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrUserNotFound
	}

	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *userServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", apperrors.NewValidationError("password cannot be empty")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.NewValidationError("password must be at most 72 bytes")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
