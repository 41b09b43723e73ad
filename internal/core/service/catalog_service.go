package service

import (
	"context"
	"time"

	"github.com/oxefood/delivery-api/internal/api/metrics"
	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// CourierService implements courier management. Couriers carry no
// credentials; they are plain managed records.
type CourierService struct {
	couriers ports.CourierRepository
}

func NewCourierService(couriers ports.CourierRepository) *CourierService {
	return &CourierService{couriers: couriers}
}

func (s *CourierService) Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error) {
	now := time.Now().UTC()
	courier.CreatedAt = now
	courier.UpdatedAt = now
	return s.couriers.Create(ctx, courier)
}

func (s *CourierService) ListAll(ctx context.Context) ([]domain.Courier, error) {
	return s.couriers.FindAll(ctx)
}

func (s *CourierService) GetByID(ctx context.Context, id string) (*domain.Courier, error) {
	return s.couriers.FindByID(ctx, id)
}

func (s *CourierService) Update(ctx context.Context, id string, courier *domain.Courier) error {
	courier.UpdatedAt = time.Now().UTC()
	return s.couriers.Update(ctx, id, courier)
}

func (s *CourierService) Delete(ctx context.Context, id string) error {
	return s.couriers.Delete(ctx, id)
}

// ProductService implements product management. Creation and update resolve
// the category so a dangling category id fails fast.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.checkCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	return s.products.Create(ctx, product)
}

func (s *ProductService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, product *domain.Product) error {
	if err := s.checkCategory(ctx, product.CategoryID); err != nil {
		return err
	}
	product.UpdatedAt = time.Now().UTC()
	return s.products.Update(ctx, id, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *ProductService) Filter(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	return s.products.Filter(ctx, filter)
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	_, err := s.categories.FindByID(ctx, categoryID)
	return err
}

// CategoryService implements category management.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.categories.Create(ctx, category)
}

func (s *CategoryService) ListAll(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id string, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()
	return s.categories.Update(ctx, id, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// SaleService implements sale management.
type SaleService struct {
	sales ports.SaleRepository
}

func NewSaleService(sales ports.SaleRepository) *SaleService {
	return &SaleService{sales: sales}
}

func (s *SaleService) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	now := time.Now().UTC()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	created, err := s.sales.Create(ctx, sale)
	if err != nil {
		return nil, err
	}

	pickup := "delivery"
	if created.StorePickup {
		pickup = "store"
	}
	metrics.SalesCreatedTotal.WithLabelValues(pickup).Inc()
	return created, nil
}

func (s *SaleService) ListAll(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.FindAll(ctx)
}

func (s *SaleService) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	return s.sales.FindByID(ctx, id)
}

func (s *SaleService) Update(ctx context.Context, id string, sale *domain.Sale) error {
	sale.UpdatedAt = time.Now().UTC()
	return s.sales.Update(ctx, id, sale)
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.sales.Delete(ctx, id)
}
