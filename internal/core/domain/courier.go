package domain

import "time"

// Courier delivers orders. Couriers have no login user; they are managed by
// employees and never authenticate against the API.
type Courier struct {
	ID              string    `json:"id"`
	Name            string    `json:"nome"`
	CPF             string    `json:"cpf"`
	RG              string    `json:"rg,omitempty"`
	BirthDate       string    `json:"dataNascimento,omitempty"`
	MobilePhone     string    `json:"foneCelular,omitempty"`
	HomePhone       string    `json:"foneFixo,omitempty"`
	DeliveriesMade  int       `json:"qtdEntregasRealizadas"`
	DeliveryFee     float64   `json:"valorFrete"`
	Address         Address   `json:"endereco"`
	Active          bool      `json:"ativo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
