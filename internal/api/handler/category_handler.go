package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for product category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Description string `json:"descricao" validate:"required"`
}

// Save registers a new category.
//
// @Summary      Register a product category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category data"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /api/categoriaproduto [post]
func (h *CategoryHandler) Save(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), &domain.Category{Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// ListAll returns every category.
//
// @Summary      List product categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /api/categoriaproduto [get]
func (h *CategoryHandler) ListAll(c echo.Context) error {
	categories, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// GetByID returns one category.
//
// @Summary      Get a product category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /api/categoriaproduto/{id} [get]
func (h *CategoryHandler) GetByID(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Update edits a category.
//
// @Summary      Update a product category
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string           true  "Category id"
// @Param        body  body  categoryRequest  true  "Category data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/categoriaproduto/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.Category{Description: req.Description}); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a category.
//
// @Summary      Delete a product category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  string  true  "Category id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/categoriaproduto/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
