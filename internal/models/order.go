package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order. The wire values
// match the historical French API contract.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "en_attente"
	OrderStatusConfirmed  OrderStatus = "confirmee"
	OrderStatusInProgress OrderStatus = "en_cours"
	OrderStatusDelivered  OrderStatus = "livree"
	OrderStatusCancelled  OrderStatus = "annulee"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a catering order. Pricing fields (prix_unitaire,
// reduction, prix_total) are a snapshot taken at creation and never change.
type Order struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UserID          uuid.UUID       `db:"utilisateur_id" json:"utilisateur_id"`
	MenuID          uuid.UUID       `db:"menu_id" json:"menu_id"`
	Guests          int             `db:"nombre_personnes" json:"nombre_personnes"`
	UnitPrice       decimal.Decimal `db:"prix_unitaire" json:"prix_unitaire"`
	DiscountPercent int             `db:"reduction" json:"reduction"`
	Total           decimal.Decimal `db:"prix_total" json:"prix_total"`
	Status          OrderStatus     `db:"statut" json:"statut"`
	EventDate       *time.Time      `db:"date_evenement" json:"date_evenement"`
	DeliveryAddress *string         `db:"adresse_livraison" json:"adresse_livraison"`
	Comment         *string         `db:"commentaire" json:"commentaire"`
	OrderedAt       time.Time       `db:"date_commande" json:"date_commande"`

	// Joined display fields, not columns of the commandes table
	MenuName       string  `db:"menu_nom" json:"menu_nom,omitempty"`
	ClientLastName *string `db:"client_nom" json:"client_nom,omitempty"`
	ClientFirst    *string `db:"client_prenom" json:"client_prenom,omitempty"`
	ClientEmail    *string `db:"client_email" json:"client_email,omitempty"`
}

// OrderRequest is the POST /api/commandes request body.
type OrderRequest struct {
	MenuID          *uuid.UUID `json:"menu_id"`
	Guests          int        `json:"nombre_personnes"`
	EventDate       *string    `json:"date_evenement"`
	DeliveryAddress *string    `json:"adresse_livraison"`
	Comment         *string    `json:"commentaire"`
}

// OrderSummary is the formatted confirmation returned on creation.
type OrderSummary struct {
	ID       uuid.UUID `json:"id"`
	MenuName string    `json:"menu"`
	Guests   int       `json:"nombre_personnes"`
	// UnitPrice is the per-person price snapshot at order time.
	UnitPrice decimal.Decimal `json:"prix_unitaire"`
	Discount  string          `json:"reduction"`  // "10%"
	Total     string          `json:"prix_total"` // "270.00 €"
}
