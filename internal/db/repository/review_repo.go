package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// ReviewRepository handles review data access
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create appends a new review
func (r *ReviewRepository) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	query := `
		INSERT INTO avis (utilisateur_id, commande_id, note, commentaire)
		VALUES ($1, $2, $3, $4)
		RETURNING id, utilisateur_id, commande_id, note, commentaire, date_creation
	`

	var createdReview models.Review
	err := r.db.GetContext(
		ctx,
		&createdReview,
		query,
		review.UserID,
		review.OrderID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &createdReview, nil
}

// ListLatest retrieves the most recent reviews with the author's name joined
func (r *ReviewRepository) ListLatest(ctx context.Context, limit int) ([]models.Review, error) {
	query := `
		SELECT a.id, a.utilisateur_id, a.commande_id, a.note, a.commentaire,
			a.date_creation, u.prenom, u.nom
		FROM avis a
		JOIN utilisateurs u ON a.utilisateur_id = u.id
		ORDER BY a.date_creation DESC
		LIMIT $1
	`

	var reviews []models.Review
	err := r.db.SelectContext(ctx, &reviews, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// AverageRating returns the mean rating across all reviews. The second
// return is false when no reviews exist yet.
func (r *ReviewRepository) AverageRating(ctx context.Context) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.db.GetContext(ctx, &avg, `SELECT AVG(note) FROM avis`)
	if err != nil {
		return 0, false, fmt.Errorf("failed to average ratings: %w", err)
	}

	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
