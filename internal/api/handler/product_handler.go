package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	CategoryID      string  `json:"idCategoria"`
	Code            string  `json:"codigo"        validate:"required"`
	Title           string  `json:"titulo"        validate:"required,max=100"`
	Description     string  `json:"descricao"     validate:"required"`
	UnitPrice       float64 `json:"valorUnitario" validate:"gte=0"`
	MinDeliveryMins int     `json:"tempoEntregaMinimo"`
	MaxDeliveryMins int     `json:"tempoEntregaMaximo"`
}

func (r *productRequest) toDomain() *domain.Product {
	return &domain.Product{
		CategoryID:      r.CategoryID,
		Code:            r.Code,
		Title:           r.Title,
		Description:     r.Description,
		UnitPrice:       r.UnitPrice,
		MinDeliveryMins: r.MinDeliveryMins,
		MaxDeliveryMins: r.MaxDeliveryMins,
	}
}

// Save registers a new product.
//
// @Summary      Register a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product data"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/produto [post]
func (h *ProductHandler) Save(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// ListAll returns every product.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /api/produto [get]
func (h *ProductHandler) ListAll(c echo.Context) error {
	products, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetByID returns one product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/produto/{id} [get]
func (h *ProductHandler) GetByID(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update edits a product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string          true  "Product id"
// @Param        body  body  productRequest  true  "Product data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/produto/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/produto/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Filter lists products matching the optional query parameters.
//
// @Summary      Filter products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        codigo       query    string  false  "Product code"
// @Param        titulo       query    string  false  "Title fragment"
// @Param        idCategoria  query    string  false  "Category id"
// @Success      200          {array}  domain.Product
// @Router       /api/produto/filtrar [post]
func (h *ProductHandler) Filter(c echo.Context) error {
	products, err := h.service.Filter(c.Request().Context(), ports.ProductFilter{
		Code:       c.QueryParam("codigo"),
		Title:      c.QueryParam("titulo"),
		CategoryID: c.QueryParam("idCategoria"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
