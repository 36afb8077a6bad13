package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
	EnsureStudentExists(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetAllStudents returns every student ordered by id
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// GetStudentByID retrieves a student by id
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.studentRepo.FindByID(ctx, id)
}

// CreateStudent stores a new student. New students are always active.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	fullname := strings.TrimSpace(req.Fullname)
	if fullname == "" {
		return nil, apperrors.NewValidationError("fullname cannot be empty")
	}

	student := &models.Student{
		Fullname:  fullname,
		Email:     strings.TrimSpace(req.Email),
		ContactNo: strings.TrimSpace(req.ContactNo),
		Status:    models.StudentActive,
	}

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student created")
	return student, nil
}

// UpdateStudent writes the fields present in req. A request without any
// fields succeeds without touching the row.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	if err := s.EnsureStudentExists(ctx, id); err != nil {
		return err
	}

	fields := models.Fields{}
	if req.Fullname != nil {
		fullname := strings.TrimSpace(*req.Fullname)
		if fullname == "" {
			return apperrors.NewValidationError("fullname cannot be empty")
		}
		fields[models.ColumnFullname] = fullname
	}
	if req.Email != nil {
		fields[models.ColumnEmail] = strings.TrimSpace(*req.Email)
	}
	if req.ContactNo != nil {
		fields[models.ColumnContactNo] = strings.TrimSpace(*req.ContactNo)
	}
	if req.Status != nil {
		if *req.Status != models.StudentActive && *req.Status != models.StudentInactive {
			return apperrors.NewValidationError("status must be 0 or 1")
		}
		fields[models.ColumnStatus] = *req.Status
	}

	if len(fields) == 0 {
		return nil
	}
	fields[models.ColumnUpdatedAt] = time.Now().UTC()

	if err := s.studentRepo.UpdateFields(ctx, id, fields); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("failed to update student: %w", err)
	}

	s.logger.Info().Int64("studentID", id).Int("fields", len(fields)-1).Msg("Student updated")
	return nil
}

// DeleteStudent removes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.EnsureStudentExists(ctx, id); err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}

	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// EnsureStudentExists returns ErrStudentNotFound unless a student with id is stored
func (s *studentServiceImpl) EnsureStudentExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}

	exists, err := s.studentRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
