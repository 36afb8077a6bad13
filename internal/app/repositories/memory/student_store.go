package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentStore keeps students in a map guarded by a RWMutex
type StudentStore struct {
	mu       sync.RWMutex
	nextID   int64
	students map[int64]*models.Student
}

// NewStudentStore creates an empty StudentStore
func NewStudentStore() *StudentStore {
	return &StudentStore{
		students: make(map[int64]*models.Student),
	}
}

// List returns copies of all students ordered by id
func (s *StudentStore) List(ctx context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*models.Student, 0, len(s.students))
	for _, id := range sortedIDs(s.students) {
		student := *s.students[id]
		students = append(students, &student)
	}
	return students, nil
}

// Exists reports whether a student with id is stored
func (s *StudentStore) Exists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.students[id]
	return ok, nil
}

// FindByID returns a copy of the student or ErrStudentNotFound
func (s *StudentStore) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	student := *stored
	return &student, nil
}

// Insert assigns the next id and timestamps to student and stores a copy
func (s *StudentStore) Insert(ctx context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.nextID++
	student.ID = s.nextID
	student.CreatedAt = now
	student.UpdatedAt = now

	stored := *student
	s.students[stored.ID] = &stored
	return nil
}

// UpdateFields applies the given column values to a stored student
func (s *StudentStore) UpdateFields(ctx context.Context, id int64, fields models.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if len(fields) == 0 {
		return nil
	}

	updated := *stored
	updated.UpdatedAt = time.Now().UTC()

	var err error
	for column, value := range fields {
		switch column {
		case models.ColumnFullname:
			updated.Fullname, err = asString(column, value)
		case models.ColumnEmail:
			updated.Email, err = asString(column, value)
		case models.ColumnContactNo:
			updated.ContactNo, err = asString(column, value)
		case models.ColumnStatus:
			status, ok := value.(int)
			if !ok {
				err = fmt.Errorf("column %s: expected int, got %T", column, value)
			}
			updated.Status = status
		case models.ColumnUpdatedAt:
			updated.UpdatedAt, err = asTime(column, value)
		default:
			err = fmt.Errorf("unknown student column %q", column)
		}
		if err != nil {
			return err
		}
	}

	s.students[id] = &updated
	return nil
}

// Delete removes a student, returning ErrStudentNotFound if it is absent
func (s *StudentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}
