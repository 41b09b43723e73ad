package ports

import (
	"context"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

// CourierRepository persists couriers.
type CourierRepository interface {
	Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error)
	FindAll(ctx context.Context) ([]domain.Courier, error)
	FindByID(ctx context.Context, id string) (*domain.Courier, error)
	Update(ctx context.Context, id string, courier *domain.Courier) error
	Delete(ctx context.Context, id string) error
}

// CourierService implements courier management.
type CourierService interface {
	Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error)
	ListAll(ctx context.Context) ([]domain.Courier, error)
	GetByID(ctx context.Context, id string) (*domain.Courier, error)
	Update(ctx context.Context, id string, courier *domain.Courier) error
	Delete(ctx context.Context, id string) error
}

// ProductFilter narrows product listings; empty fields are ignored.
type ProductFilter struct {
	Code       string
	Title      string
	CategoryID string
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

// ProductService implements product management.
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// CategoryService implements category management.
type CategoryService interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	ListAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// SaleRepository persists sales.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	FindAll(ctx context.Context) ([]domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	Update(ctx context.Context, id string, sale *domain.Sale) error
	Delete(ctx context.Context, id string) error
}

// SaleService implements sale management.
type SaleService interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ListAll(ctx context.Context) ([]domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Update(ctx context.Context, id string, sale *domain.Sale) error
	Delete(ctx context.Context, id string) error
}
