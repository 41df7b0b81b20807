package repository

import (
	"github.com/vite-gourmand/catering-service/internal/db"
)

// Repositories provides access to all repository instances
type Repositories struct {
	User    *UserRepository
	Menu    *MenuRepository
	Order   *OrderRepository
	Review  *ReviewRepository
	Contact *ContactRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(database *db.Postgres) *Repositories {
	return &Repositories{
		User:    NewUserRepository(database.DB),
		Menu:    NewMenuRepository(database.DB),
		Order:   NewOrderRepository(database.DB),
		Review:  NewReviewRepository(database.DB),
		Contact: NewContactRepository(database.DB),
	}
}
