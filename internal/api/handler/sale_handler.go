package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// SaleHandler handles HTTP requests for sale operations.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type saleRequest struct {
	Customer    string  `json:"cliente"    validate:"required"`
	Product     string  `json:"produto"    validate:"required"`
	Status      string  `json:"statusVenda"`
	Date        string  `json:"dataVenda"`
	Total       float64 `json:"valorTotal" validate:"gte=0"`
	Notes       string  `json:"observacao"`
	StorePickup bool    `json:"retiradaEmLoja"`
}

func (r *saleRequest) toDomain() *domain.Sale {
	return &domain.Sale{
		Customer:    r.Customer,
		Product:     r.Product,
		Status:      r.Status,
		Date:        r.Date,
		Total:       r.Total,
		Notes:       r.Notes,
		StorePickup: r.StorePickup,
	}
}

// Save registers a new sale.
//
// @Summary      Register a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saleRequest  true  "Sale data"
// @Success      201   {object}  domain.Sale
// @Failure      400   {object}  map[string]string
// @Router       /api/venda [post]
func (h *SaleHandler) Save(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sale, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}

// ListAll returns every sale.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Sale
// @Router       /api/venda [get]
func (h *SaleHandler) ListAll(c echo.Context) error {
	sales, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// GetByID returns one sale.
//
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sale id"
// @Success      200  {object}  domain.Sale
// @Failure      404  {object}  map[string]string
// @Router       /api/venda/{id} [get]
func (h *SaleHandler) GetByID(c echo.Context) error {
	sale, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Update edits a sale.
//
// @Summary      Update a sale
// @Tags         sales
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Sale id"
// @Param        body  body  saleRequest  true  "Sale data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/venda/{id} [put]
func (h *SaleHandler) Update(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a sale.
//
// @Summary      Delete a sale
// @Tags         sales
// @Security     BearerAuth
// @Param        id  path  string  true  "Sale id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/venda/{id} [delete]
func (h *SaleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
