package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// MenuStore is the menu persistence the menu service needs.
type MenuStore interface {
	ListActive(ctx context.Context) ([]models.Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error)
	ListDishes(ctx context.Context, menuID uuid.UUID) ([]models.Dish, error)
	Create(ctx context.Context, menu models.Menu) (*models.Menu, error)
}

// MenuService handles menu browsing and back-office menu management.
type MenuService struct {
	menus MenuStore
}

// NewMenuService creates a new menu service.
func NewMenuService(menus MenuStore) *MenuService {
	return &MenuService{menus: menus}
}

// List retrieves the active menus.
func (s *MenuService) List(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.menus.ListActive(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	return menus, nil
}

// Detail retrieves one menu with its dishes in course order.
func (s *MenuService) Detail(ctx context.Context, id uuid.UUID) (*models.MenuDetail, error) {
	menu, err := s.menus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Menu non trouvé.")
		}
		return nil, Internal(err)
	}

	dishes, err := s.menus.ListDishes(ctx, id)
	if err != nil {
		return nil, Internal(err)
	}

	return &models.MenuDetail{Menu: *menu, Dishes: dishes}, nil
}

// Create creates a new menu. The historical default minimum is six guests.
func (s *MenuService) Create(ctx context.Context, req models.MenuRequest) (*models.Menu, error) {
	if req.Name == "" || !req.Price.IsPositive() {
		return nil, Invalid("Nom et prix requis.")
	}

	minGuests := req.MinGuests
	if minGuests <= 0 {
		minGuests = 6
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Theme:       req.Theme,
		Diet:        req.Diet,
		Image:       req.Image,
		MinGuests:   minGuests,
	}

	created, err := s.menus.Create(ctx, menu)
	if err != nil {
		return nil, Internal(err)
	}

	return created, nil
}
