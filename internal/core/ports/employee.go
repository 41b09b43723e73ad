package ports

import (
	"context"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// CreateEmployeeInput carries the registration payload. The employee type
// decides which role the login user receives.
type CreateEmployeeInput struct {
	Type        domain.EmployeeType
	Email       string
	Password    string
	Name        string
	CPF         string
	RG          string
	BirthDate   string
	MobilePhone string
	HomePhone   string
	Salary      float64
	Address     domain.Address
}

// EmployeeService implements employee registration and management.
type EmployeeService interface {
	Register(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	ListAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
