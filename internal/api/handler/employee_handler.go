package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	Type        string  `json:"tipo"           validate:"required,oneof=ADMINISTRADOR OPERADOR"`
	Email       string  `json:"email"          validate:"required,email"`
	Password    string  `json:"password"       validate:"required,min=6"`
	Name        string  `json:"nome"           validate:"required"`
	CPF         string  `json:"cpf"            validate:"required"`
	RG          string  `json:"rg"`
	BirthDate   string  `json:"dataNascimento"`
	MobilePhone string  `json:"foneCelular"`
	HomePhone   string  `json:"foneFixo"`
	Salary      float64 `json:"salario"`
	Street      string  `json:"enderecoRua"`
	Number      string  `json:"enderecoNumero"`
	District    string  `json:"enderecoBairro"`
	City        string  `json:"enderecoCidade"`
	ZipCode     string  `json:"enderecoCep"`
	State       string  `json:"enderecoUf"`
	Complement  string  `json:"enderecoComplemento"`
}

func (r *employeeRequest) address() domain.Address {
	return domain.Address{
		Street:     r.Street,
		Number:     r.Number,
		District:   r.District,
		City:       r.City,
		ZipCode:    r.ZipCode,
		State:      r.State,
		Complement: r.Complement,
	}
}

// Save registers a new employee together with its login user. The employee
// type decides the user's role.
//
// @Summary      Register an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee registration"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/funcionario [post]
func (h *EmployeeHandler) Save(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Register(c.Request().Context(), ports.CreateEmployeeInput{
		Type:        domain.EmployeeType(req.Type),
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		CPF:         req.CPF,
		RG:          req.RG,
		BirthDate:   req.BirthDate,
		MobilePhone: req.MobilePhone,
		HomePhone:   req.HomePhone,
		Salary:      req.Salary,
		Address:     req.address(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// ListAll returns every employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /api/funcionario [get]
func (h *EmployeeHandler) ListAll(c echo.Context) error {
	employees, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// GetByID returns one employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/funcionario/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	employee, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Update edits an employee record. Credentials and role are not touched here.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string           true  "Employee id"
// @Param        body  body  employeeRequest  true  "Employee data"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/funcionario/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), &domain.Employee{
		Type:        domain.EmployeeType(req.Type),
		Name:        req.Name,
		CPF:         req.CPF,
		RG:          req.RG,
		BirthDate:   req.BirthDate,
		MobilePhone: req.MobilePhone,
		HomePhone:   req.HomePhone,
		Salary:      req.Salary,
		Address:     req.address(),
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /api/funcionario/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
