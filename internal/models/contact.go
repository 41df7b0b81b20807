package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an inbound contact-form submission. Append-only, no
// further lifecycle.
type ContactMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"nom" json:"nom"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"telephone" json:"telephone"`
	Subject   string    `db:"sujet" json:"sujet"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"date_creation" json:"date_creation"`
}

// ContactRequest is the POST /api/contact request body.
type ContactRequest struct {
	Name    string  `json:"nom"`
	Email   string  `json:"email"`
	Phone   *string `json:"telephone"`
	Subject string  `json:"sujet"`
	Message string  `json:"message"`
}
