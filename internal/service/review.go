package service

import (
	"context"

	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/session"
)

const reviewListLimit = 20

// ReviewStore is the review persistence the review service needs.
type ReviewStore interface {
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	ListLatest(ctx context.Context, limit int) ([]models.Review, error)
}

// ReviewService handles client reviews.
type ReviewService struct {
	reviews ReviewStore
}

// NewReviewService creates a new review service.
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create appends a review from the authenticated caller.
func (s *ReviewService) Create(ctx context.Context, identity *session.Identity, req models.ReviewRequest) (*models.Review, error) {
	if identity == nil {
		return nil, Unauthorized("Vous devez être connecté.")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, Invalid("La note doit être entre 1 et 5.")
	}

	review := models.Review{
		UserID:  identity.ID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, Internal(err)
	}

	return created, nil
}

// ListLatest retrieves the most recent reviews for the public page.
func (s *ReviewService) ListLatest(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviews.ListLatest(ctx, reviewListLimit)
	if err != nil {
		return nil, Internal(err)
	}

	return reviews, nil
}
