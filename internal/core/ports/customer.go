package ports

import (
	"context"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

// CustomerRepository persists customers and their delivery addresses.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, name, cpf string) ([]domain.Customer, error)

	AddAddress(ctx context.Context, customerID string, addr *domain.CustomerAddress) (*domain.CustomerAddress, error)
	FindAddresses(ctx context.Context, customerID string) ([]domain.CustomerAddress, error)
	UpdateAddress(ctx context.Context, addressID string, addr *domain.CustomerAddress) error
	DeleteAddress(ctx context.Context, addressID string) error
}

// CreateCustomerInput carries the registration payload: profile data plus the
// credentials for the login user created alongside.
type CreateCustomerInput struct {
	Email       string
	Password    string
	Name        string
	BirthDate   string
	CPF         string
	MobilePhone string
	HomePhone   string
}

// CustomerService implements customer registration and management.
type CustomerService interface {
	Register(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, name, cpf string) ([]domain.Customer, error)

	AddAddress(ctx context.Context, customerID string, addr *domain.CustomerAddress) (*domain.CustomerAddress, error)
	ListAddresses(ctx context.Context, customerID string) ([]domain.CustomerAddress, error)
	UpdateAddress(ctx context.Context, addressID string, addr *domain.CustomerAddress) error
	RemoveAddress(ctx context.Context, addressID string) error
}
