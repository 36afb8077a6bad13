package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentrecords/internal/app/models"
)

// IStudentRepository defines the storage operations on student records
type IStudentRepository interface {
	List(ctx context.Context) ([]*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) error
	UpdateFields(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

// IUserRepository defines the storage operations on user records, which
// double as the credential store for authentication
type IUserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id int64, fields models.Fields) error
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository IStudentRepository
	UserRepository    IUserRepository
}

// NewRepositories initializes the PostgreSQL-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
