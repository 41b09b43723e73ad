package domain

import "time"

// EmployeeType distinguishes back-office administrators from store operators.
// It decides which role the employee's login user receives.
type EmployeeType string

const (
	EmployeeAdmin    EmployeeType = "ADMINISTRADOR"
	EmployeeOperator EmployeeType = "OPERADOR"
)

// RoleFor maps the employee type to its authorization role label.
func (t EmployeeType) RoleFor() string {
	if t == EmployeeAdmin {
		return RoleEmployeeAdmin
	}
	return RoleEmployeeUser
}

// Valid reports whether t is a known employee type.
func (t EmployeeType) Valid() bool {
	return t == EmployeeAdmin || t == EmployeeOperator
}

// Employee is a store worker. Every employee owns a login user whose role is
// derived from Type.
type Employee struct {
	ID          string       `json:"id"`
	Type        EmployeeType `json:"tipo"`
	Name        string       `json:"nome"`
	CPF         string       `json:"cpf"`
	RG          string       `json:"rg,omitempty"`
	BirthDate   string       `json:"dataNascimento,omitempty"`
	MobilePhone string       `json:"foneCelular,omitempty"`
	HomePhone   string       `json:"foneFixo,omitempty"`
	Salary      float64      `json:"salario,omitempty"`
	Address     Address      `json:"endereco"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Address is the flat address block embedded in employees and couriers.
type Address struct {
	Street     string `json:"rua,omitempty"`
	Number     string `json:"numero,omitempty"`
	District   string `json:"bairro,omitempty"`
	City       string `json:"cidade,omitempty"`
	ZipCode    string `json:"cep,omitempty"`
	State      string `json:"uf,omitempty"`
	Complement string `json:"complemento,omitempty"`
}
