package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// ContactRepository handles contact message data access
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create appends a new contact message
func (r *ContactRepository) Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	query := `
		INSERT INTO messages_contact (nom, email, telephone, sujet, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nom, email, telephone, sujet, message, date_creation
	`

	var createdMsg models.ContactMessage
	err := r.db.GetContext(
		ctx,
		&createdMsg,
		query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return &createdMsg, nil
}
