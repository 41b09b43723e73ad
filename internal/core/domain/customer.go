package domain

import "time"

// Customer is a registered buyer. Customers own a login user with the
// CLIENTE role, created together with the customer record.
type Customer struct {
	ID          string            `json:"id"`
	Name        string            `json:"nome"`
	BirthDate   string            `json:"dataNascimento,omitempty"`
	CPF         string            `json:"cpf"`
	MobilePhone string            `json:"foneCelular,omitempty"`
	HomePhone   string            `json:"foneFixo,omitempty"`
	Addresses   []CustomerAddress `json:"enderecos,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CustomerAddress is a delivery address owned by a customer.
type CustomerAddress struct {
	ID         string `json:"id"`
	CustomerID string `json:"clienteId"`
	Street     string `json:"rua"`
	Number     string `json:"numero"`
	District   string `json:"bairro"`
	ZipCode    string `json:"cep"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	Complement string `json:"complemento,omitempty"`
}
