package domain

import "time"

// Category groups products for the menu.
type Category struct {
	ID          string    `json:"id"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a sellable menu item.
type Product struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"idCategoria,omitempty"`
	Code            string    `json:"codigo"`
	Title           string    `json:"titulo"`
	Description     string    `json:"descricao"`
	UnitPrice       float64   `json:"valorUnitario"`
	MinDeliveryMins int       `json:"tempoEntregaMinimo,omitempty"`
	MaxDeliveryMins int       `json:"tempoEntregaMaximo,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
