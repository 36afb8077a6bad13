package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

var studentColumns = []string{
	"id", "fullname", "email", "contact_no", "status", "created_at", "updated_at",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// List returns every student ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.Student])
	if err != nil {
		return nil, fmt.Errorf("failed to scan students: %w", err)
	}

	return students, nil
}

// Exists reports whether a student with the given id is stored
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := existsQuery(r.sb, studentsTable, id)
	if err != nil {
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}

	return exists, nil
}

// FindByID retrieves a student by id
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	student, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Student])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}

	return student, nil
}

// Insert stores a new student and fills in its generated id and timestamps
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert(studentsTable).
		Columns(models.ColumnFullname, models.ColumnEmail, models.ColumnContactNo, models.ColumnStatus).
		Values(student.Fullname, student.Email, student.ContactNo, student.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}

// UpdateFields writes only the given columns of a student
func (r *StudentRepository) UpdateFields(ctx context.Context, id int64, fields models.Fields) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := updateFieldsQuery(r.sb, studentsTable, id, fields)
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := deleteQuery(r.sb, studentsTable, id)
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
