package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentrecords/internal/app/models"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
)

// DefaultUser describes the account created at startup when missing
type DefaultUser struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultUser inserts the default user unless its email is already
// registered. An empty email disables seeding.
func CreateDefaultUser(ctx context.Context, userRepo appRepos.IUserRepository, hasher *auth.PasswordHasher, user DefaultUser, lgr zerolog.Logger) error {
	if user.Email == "" {
		lgr.Debug().Msg("No default user configured, skipping seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check default user: %w", err)
	}
	if exists {
		lgr.Info().Str("email", user.Email).Msg("Default user already exists")
		return nil
	}

	hash, err := hasher.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash default user password: %w", err)
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}

	record := &appModels.User{Name: name, Email: user.Email, Password: hash}
	if err := userRepo.Insert(ctx, record); err != nil {
		// Another instance may have seeded between the check and the insert.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create default user: %w", err)
	}

	lgr.Info().Int64("userID", record.ID).Str("email", user.Email).Msg("Default user created")
	return nil
}
