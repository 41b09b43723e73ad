package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// EmployeeService implements employee registration and management. Register
// creates the login user whose role follows the employee type:
// ADMINISTRADOR gets FUNCIONARIO_ADMIN, OPERADOR gets FUNCIONARIO_USER.
type EmployeeService struct {
	employees ports.EmployeeRepository
	users     ports.UserRepository
}

func NewEmployeeService(employees ports.EmployeeRepository, users ports.UserRepository) *EmployeeService {
	return &EmployeeService{employees: employees, users: users}
}

func (s *EmployeeService) Register(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidEmployeeType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := s.users.Create(ctx, &domain.User{
		Username:     input.Email,
		PasswordHash: string(hash),
		Roles:        []string{input.Type.RoleFor()},
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return nil, err
	}

	return s.employees.Create(ctx, &domain.Employee{
		Type:        input.Type,
		Name:        input.Name,
		CPF:         input.CPF,
		RG:          input.RG,
		BirthDate:   input.BirthDate,
		MobilePhone: input.MobilePhone,
		HomePhone:   input.HomePhone,
		Salary:      input.Salary,
		Address:     input.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *EmployeeService) ListAll(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.FindAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) Update(ctx context.Context, id string, employee *domain.Employee) error {
	employee.UpdatedAt = time.Now().UTC()
	return s.employees.Update(ctx, id, employee)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}
