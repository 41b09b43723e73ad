package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations, including
// the delivery-address sub-resource.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type createCustomerRequest struct {
	Email       string `json:"email"          validate:"required,email"`
	Password    string `json:"password"       validate:"required,min=6"`
	Name        string `json:"nome"           validate:"required"`
	BirthDate   string `json:"dataNascimento"`
	CPF         string `json:"cpf"            validate:"required"`
	MobilePhone string `json:"foneCelular"`
	HomePhone   string `json:"foneFixo"`
}

type updateCustomerRequest struct {
	Name        string `json:"nome"`
	BirthDate   string `json:"dataNascimento"`
	CPF         string `json:"cpf"`
	MobilePhone string `json:"foneCelular"`
	HomePhone   string `json:"foneFixo"`
}

type addressRequest struct {
	Street     string `json:"rua"    validate:"required"`
	Number     string `json:"numero" validate:"required"`
	District   string `json:"bairro"`
	ZipCode    string `json:"cep"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	Complement string `json:"complemento"`
}

// Save registers a new customer together with its login user.
//
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer registration"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/cliente [post]
func (h *CustomerHandler) Save(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Register(c.Request().Context(), ports.CreateCustomerInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		CPF:         req.CPF,
		MobilePhone: req.MobilePhone,
		HomePhone:   req.HomePhone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// ListAll returns every registered customer.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Customer
// @Router       /api/cliente [get]
func (h *CustomerHandler) ListAll(c echo.Context) error {
	customers, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// GetByID returns one customer.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /api/cliente/{id} [get]
func (h *CustomerHandler) GetByID(c echo.Context) error {
	customer, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update edits a customer.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                 true  "Customer id"
// @Param        body  body  updateCustomerRequest  true  "Customer data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/cliente/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.Customer{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		CPF:         req.CPF,
		MobilePhone: req.MobilePhone,
		HomePhone:   req.HomePhone,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a customer.
//
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/cliente/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Filter lists customers matching the optional nome/cpf query parameters.
//
// @Summary      Filter customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        nome  query    string  false  "Name fragment"
// @Param        cpf   query    string  false  "CPF fragment"
// @Success      200   {array}  domain.Customer
// @Router       /api/cliente/filtrar [post]
func (h *CustomerHandler) Filter(c echo.Context) error {
	customers, err := h.service.Filter(c.Request().Context(), c.QueryParam("nome"), c.QueryParam("cpf"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// AddAddress attaches a delivery address to a customer.
//
// @Summary      Add a customer address
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId  path      string          true  "Customer id"
// @Param        body       body      addressRequest  true  "Address"
// @Success      201        {object}  domain.CustomerAddress
// @Failure      404        {object}  map[string]string
// @Router       /api/cliente/endereco/{clienteId} [post]
func (h *CustomerHandler) AddAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	addr, err := h.service.AddAddress(c.Request().Context(), c.Param("clienteId"), &domain.CustomerAddress{
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		ZipCode:    req.ZipCode,
		City:       req.City,
		State:      req.State,
		Complement: req.Complement,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, addr)
}

// ListAddresses returns a customer's delivery addresses.
//
// @Summary      List customer addresses
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        clienteId  path     string  true  "Customer id"
// @Success      200        {array}  domain.CustomerAddress
// @Failure      404        {object}  map[string]string
// @Router       /api/cliente/endereco/{clienteId} [get]
func (h *CustomerHandler) ListAddresses(c echo.Context) error {
	addrs, err := h.service.ListAddresses(c.Request().Context(), c.Param("clienteId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addrs)
}

// UpdateAddress edits a delivery address.
//
// @Summary      Update a customer address
// @Tags         customers
// @Accept       json
// @Security     BearerAuth
// @Param        enderecoId  path  string          true  "Address id"
// @Param        body        body  addressRequest  true  "Address"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/cliente/endereco/{enderecoId} [put]
func (h *CustomerHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.UpdateAddress(c.Request().Context(), c.Param("enderecoId"), &domain.CustomerAddress{
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		ZipCode:    req.ZipCode,
		City:       req.City,
		State:      req.State,
		Complement: req.Complement,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// RemoveAddress deletes a delivery address.
//
// @Summary      Remove a customer address
// @Tags         customers
// @Security     BearerAuth
// @Param        enderecoId  path  string  true  "Address id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/cliente/endereco/{enderecoId} [delete]
func (h *CustomerHandler) RemoveAddress(c echo.Context) error {
	if err := h.service.RemoveAddress(c.Request().Context(), c.Param("enderecoId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
