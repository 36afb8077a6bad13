package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// UserStore keeps users in a map guarded by a RWMutex. Emails are unique,
// mirroring the users_email_key constraint of the PostgreSQL schema.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

// NewUserStore creates an empty UserStore
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[int64]*models.User),
	}
}

// List returns copies of all users ordered by id
func (s *UserStore) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		user := *s.users[id]
		users = append(users, &user)
	}
	return users, nil
}

// Exists reports whether a user with id is stored
func (s *UserStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

// FindByID returns a copy of the user or ErrUserNotFound
func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user := *stored
	return &user, nil
}

// FindByEmail looks a user up by exact email
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if stored := s.byEmail(email); stored != nil {
		user := *stored
		return &user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

// EmailExists reports whether any user has the given email
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byEmail(email) != nil, nil
}

// byEmail must be called with mu held
func (s *UserStore) byEmail(email string) *models.User {
	for _, user := range s.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

// Insert stores a copy of user under the next id. A taken email yields
// ErrEmailAlreadyExists.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byEmail(user.Email) != nil {
		return apperrors.ErrEmailAlreadyExists
	}

	now := time.Now().UTC()
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

// UpdateFields applies the given column values to a stored user
func (s *UserStore) UpdateFields(ctx context.Context, id int64, fields models.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if len(fields) == 0 {
		return nil
	}

	updated := *stored
	updated.UpdatedAt = time.Now().UTC()

	var err error
	for column, value := range fields {
		switch column {
		case models.ColumnName:
			updated.Name, err = asString(column, value)
		case models.ColumnEmail:
			updated.Email, err = asString(column, value)
			if other := s.byEmail(updated.Email); err == nil && other != nil && other.ID != id {
				err = apperrors.ErrEmailAlreadyExists
			}
		case models.ColumnPassword:
			updated.Password, err = asString(column, value)
		case models.ColumnUpdatedAt:
			updated.UpdatedAt, err = asTime(column, value)
		default:
			err = fmt.Errorf("unknown user column %q", column)
		}
		if err != nil {
			return err
		}
	}

	s.users[id] = &updated
	return nil
}

// Delete removes a user, returning ErrUserNotFound if it is absent
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}
