package domain

import "time"

// Sale records an order placed by a customer.
type Sale struct {
	ID          string    `json:"id"`
	Customer    string    `json:"cliente"`
	Product     string    `json:"produto"`
	Status      string    `json:"statusVenda"`
	Date        string    `json:"dataVenda,omitempty"`
	Total       float64   `json:"valorTotal"`
	Notes       string    `json:"observacao,omitempty"`
	StorePickup bool      `json:"retiradaEmLoja"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
