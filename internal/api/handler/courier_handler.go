package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// CourierHandler handles HTTP requests for courier operations.
type CourierHandler struct {
	service ports.CourierService
}

func NewCourierHandler(service ports.CourierService) *CourierHandler {
	return &CourierHandler{service: service}
}

type courierRequest struct {
	Name           string  `json:"nome" validate:"required"`
	CPF            string  `json:"cpf"  validate:"required"`
	RG             string  `json:"rg"`
	BirthDate      string  `json:"dataNascimento"`
	MobilePhone    string  `json:"foneCelular"`
	HomePhone      string  `json:"foneFixo"`
	DeliveriesMade int     `json:"qtdEntregasRealizadas"`
	DeliveryFee    float64 `json:"valorFrete"`
	Street         string  `json:"enderecoRua"`
	Number         string  `json:"enderecoNumero"`
	District       string  `json:"enderecoBairro"`
	City           string  `json:"enderecoCidade"`
	ZipCode        string  `json:"enderecoCep"`
	State          string  `json:"enderecoUf"`
	Complement     string  `json:"enderecoComplemento"`
	Active         bool    `json:"ativo"`
}

func (r *courierRequest) toDomain() *domain.Courier {
	return &domain.Courier{
		Name:           r.Name,
		CPF:            r.CPF,
		RG:             r.RG,
		BirthDate:      r.BirthDate,
		MobilePhone:    r.MobilePhone,
		HomePhone:      r.HomePhone,
		DeliveriesMade: r.DeliveriesMade,
		DeliveryFee:    r.DeliveryFee,
		Active:         r.Active,
		Address: domain.Address{
			Street:     r.Street,
			Number:     r.Number,
			District:   r.District,
			City:       r.City,
			ZipCode:    r.ZipCode,
			State:      r.State,
			Complement: r.Complement,
		},
	}
}

// Save registers a new courier.
//
// @Summary      Register a courier
// @Tags         couriers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courierRequest  true  "Courier data"
// @Success      201   {object}  domain.Courier
// @Failure      400   {object}  map[string]string
// @Router       /api/entregador [post]
func (h *CourierHandler) Save(c echo.Context) error {
	var req courierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	courier, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, courier)
}

// ListAll returns every courier.
//
// @Summary      List couriers
// @Tags         couriers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Courier
// @Router       /api/entregador [get]
func (h *CourierHandler) ListAll(c echo.Context) error {
	couriers, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, couriers)
}

// GetByID returns one courier.
//
// @Summary      Get a courier
// @Tags         couriers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Courier id"
// @Success      200  {object}  domain.Courier
// @Failure      404  {object}  map[string]string
// @Router       /api/entregador/{id} [get]
func (h *CourierHandler) GetByID(c echo.Context) error {
	courier, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courier)
}

// Update edits a courier.
//
// @Summary      Update a courier
// @Tags         couriers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string          true  "Courier id"
// @Param        body  body  courierRequest  true  "Courier data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/entregador/{id} [put]
func (h *CourierHandler) Update(c echo.Context) error {
	var req courierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a courier.
//
// @Summary      Delete a courier
// @Tags         couriers
// @Security     BearerAuth
// @Param        id  path  string  true  "Courier id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/entregador/{id} [delete]
func (h *CourierHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
