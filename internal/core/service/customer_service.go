package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// CustomerService implements customer registration and management. Register
// also creates the login user carrying the CLIENTE role; the username is the
// customer's e-mail.
type CustomerService struct {
	customers ports.CustomerRepository
	users     ports.UserRepository
}

func NewCustomerService(customers ports.CustomerRepository, users ports.UserRepository) *CustomerService {
	return &CustomerService{customers: customers, users: users}
}

func (s *CustomerService) Register(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := s.users.Create(ctx, &domain.User{
		Username:     input.Email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleCustomer},
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return nil, err
	}

	return s.customers.Create(ctx, &domain.Customer{
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		CPF:         input.CPF,
		MobilePhone: input.MobilePhone,
		HomePhone:   input.HomePhone,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CustomerService) ListAll(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id string, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	return s.customers.Update(ctx, id, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

func (s *CustomerService) Filter(ctx context.Context, name, cpf string) ([]domain.Customer, error) {
	return s.customers.Filter(ctx, name, cpf)
}

func (s *CustomerService) AddAddress(ctx context.Context, customerID string, addr *domain.CustomerAddress) (*domain.CustomerAddress, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	addr.CustomerID = customerID
	return s.customers.AddAddress(ctx, customerID, addr)
}

func (s *CustomerService) ListAddresses(ctx context.Context, customerID string) ([]domain.CustomerAddress, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.customers.FindAddresses(ctx, customerID)
}

func (s *CustomerService) UpdateAddress(ctx context.Context, addressID string, addr *domain.CustomerAddress) error {
	return s.customers.UpdateAddress(ctx, addressID, addr)
}

func (s *CustomerService) RemoveAddress(ctx context.Context, addressID string) error {
	return s.customers.DeleteAddress(ctx, addressID)
}
