package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client rating of the service, optionally tied to an order.
// Reviews are append-only.
type Review struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"utilisateur_id" json:"utilisateur_id"`
	OrderID   *uuid.UUID `db:"commande_id" json:"commande_id"`
	Rating    int        `db:"note" json:"note"`
	Comment   *string    `db:"commentaire" json:"commentaire"`
	CreatedAt time.Time  `db:"date_creation" json:"date_creation"`

	// Joined author fields for public listing
	AuthorFirstName string `db:"prenom" json:"prenom,omitempty"`
	AuthorLastName  string `db:"nom" json:"nom,omitempty"`
}

// ReviewRequest is the POST /api/avis request body.
type ReviewRequest struct {
	Rating  int        `json:"note"`
	Comment *string    `json:"commentaire"`
	OrderID *uuid.UUID `json:"commande_id"`
}
