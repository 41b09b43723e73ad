package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

type stubCustomerRepo struct {
	created *domain.Customer
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.created = customer
	clone := *customer
	clone.ID = "cust_1"
	return &clone, nil
}

func (r *stubCustomerRepo) FindAll(context.Context) ([]domain.Customer, error) { return nil, nil }
func (r *stubCustomerRepo) FindByID(context.Context, string) (*domain.Customer, error) {
	return nil, domain.ErrCustomerNotFound
}
func (r *stubCustomerRepo) Update(context.Context, string, *domain.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(context.Context, string) error                   { return nil }
func (r *stubCustomerRepo) Filter(context.Context, string, string) ([]domain.Customer, error) {
	return nil, nil
}
func (r *stubCustomerRepo) AddAddress(context.Context, string, *domain.CustomerAddress) (*domain.CustomerAddress, error) {
	return nil, nil
}
func (r *stubCustomerRepo) FindAddresses(context.Context, string) ([]domain.CustomerAddress, error) {
	return nil, nil
}
func (r *stubCustomerRepo) UpdateAddress(context.Context, string, *domain.CustomerAddress) error {
	return nil
}
func (r *stubCustomerRepo) DeleteAddress(context.Context, string) error { return nil }

type stubEmployeeRepo struct {
	created *domain.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.created = employee
	clone := *employee
	clone.ID = "emp_1"
	return &clone, nil
}

func (r *stubEmployeeRepo) FindAll(context.Context) ([]domain.Employee, error) { return nil, nil }
func (r *stubEmployeeRepo) FindByID(context.Context, string) (*domain.Employee, error) {
	return nil, domain.ErrEmployeeNotFound
}
func (r *stubEmployeeRepo) Update(context.Context, string, *domain.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(context.Context, string) error                   { return nil }

func TestCustomerService_Register_CreatesUserWithCustomerRole(t *testing.T) {
	users := newStubUserRepo()
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, users)

	customer, err := svc.Register(context.Background(), ports.CreateCustomerInput{
		Email:    "maria@example.com",
		Password: "s3cret",
		Name:     "Maria Silva",
		CPF:      "123.456.789-00",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if customer.ID != "cust_1" {
		t.Fatalf("unexpected customer id: %q", customer.ID)
	}

	user, err := users.FindByUsername(context.Background(), "maria@example.com")
	if err != nil {
		t.Fatalf("login user not created: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleCustomer {
		t.Fatalf("expected role %s, got %v", domain.RoleCustomer, user.Roles)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
}

func TestCustomerService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "maria@example.com", "whatever", domain.RoleCustomer)
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo, users)

	_, err := svc.Register(context.Background(), ports.CreateCustomerInput{
		Email:    "maria@example.com",
		Password: "s3cret",
		Name:     "Maria Silva",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("customer profile must not be created when the user already exists")
	}
}

func TestEmployeeService_Register_RoleFollowsType(t *testing.T) {
	cases := []struct {
		employeeType domain.EmployeeType
		wantRole     string
	}{
		{domain.EmployeeAdmin, domain.RoleEmployeeAdmin},
		{domain.EmployeeOperator, domain.RoleEmployeeUser},
	}

	for _, tc := range cases {
		t.Run(string(tc.employeeType), func(t *testing.T) {
			users := newStubUserRepo()
			svc := NewEmployeeService(&stubEmployeeRepo{}, users)

			_, err := svc.Register(context.Background(), ports.CreateEmployeeInput{
				Type:     tc.employeeType,
				Email:    "joao@example.com",
				Password: "s3cret",
				Name:     "João Souza",
			})
			if err != nil {
				t.Fatalf("register: %v", err)
			}

			user, err := users.FindByUsername(context.Background(), "joao@example.com")
			if err != nil {
				t.Fatalf("login user not created: %v", err)
			}
			if len(user.Roles) != 1 || user.Roles[0] != tc.wantRole {
				t.Fatalf("expected role %s, got %v", tc.wantRole, user.Roles)
			}
		})
	}
}

func TestEmployeeService_Register_UnknownType(t *testing.T) {
	users := newStubUserRepo()
	svc := NewEmployeeService(&stubEmployeeRepo{}, users)

	_, err := svc.Register(context.Background(), ports.CreateEmployeeInput{
		Type:     domain.EmployeeType("GERENTE"),
		Email:    "joao@example.com",
		Password: "s3cret",
	})
	if err == nil {
		t.Fatal("expected error for unknown employee type")
	}
	if _, findErr := users.FindByUsername(context.Background(), "joao@example.com"); findErr == nil {
		t.Fatal("user must not be created for unknown employee type")
	}
}
