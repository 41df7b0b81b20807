package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// MenuRepository handles menu data access
type MenuRepository struct {
	db *sqlx.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *sqlx.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListActive retrieves all active menus
func (r *MenuRepository) ListActive(ctx context.Context) ([]models.Menu, error) {
	query := `
		SELECT id, nom, description, prix, theme, regime, image, minimum_personnes, actif, date_creation
		FROM menus
		WHERE actif = TRUE
		ORDER BY nom ASC
	`

	var menus []models.Menu
	err := r.db.SelectContext(ctx, &menus, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	return menus, nil
}

// GetByID retrieves a menu by ID, active or not
func (r *MenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	query := `
		SELECT id, nom, description, prix, theme, regime, image, minimum_personnes, actif, date_creation
		FROM menus
		WHERE id = $1
	`

	var menu models.Menu
	err := r.db.GetContext(ctx, &menu, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return &menu, nil
}

// GetActiveByID retrieves a menu that is still orderable
func (r *MenuRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	query := `
		SELECT id, nom, description, prix, theme, regime, image, minimum_personnes, actif, date_creation
		FROM menus
		WHERE id = $1 AND actif = TRUE
	`

	var menu models.Menu
	err := r.db.GetContext(ctx, &menu, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get active menu: %w", err)
	}

	return &menu, nil
}

// ListDishes retrieves a menu's dishes in traditional course order
func (r *MenuRepository) ListDishes(ctx context.Context, menuID uuid.UUID) ([]models.Dish, error) {
	query := `
		SELECT id, menu_id, nom, categorie, description
		FROM plats
		WHERE menu_id = $1
		ORDER BY CASE categorie
			WHEN 'entree' THEN 1
			WHEN 'poisson' THEN 2
			WHEN 'plat_principal' THEN 3
			WHEN 'fromage' THEN 4
			WHEN 'dessert' THEN 5
		END, nom ASC
	`

	var dishes []models.Dish
	err := r.db.SelectContext(ctx, &dishes, query, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	return dishes, nil
}

// Create creates a new menu
func (r *MenuRepository) Create(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	query := `
		INSERT INTO menus (nom, description, prix, theme, regime, image, minimum_personnes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, nom, description, prix, theme, regime, image, minimum_personnes, actif, date_creation
	`

	var createdMenu models.Menu
	err := r.db.GetContext(
		ctx,
		&createdMenu,
		query,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.Theme,
		menu.Diet,
		menu.Image,
		menu.MinGuests,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	return &createdMenu, nil
}

// CountActive returns the number of active menus
func (r *MenuRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM menus WHERE actif = TRUE`)
	if err != nil {
		return 0, fmt.Errorf("failed to count menus: %w", err)
	}

	return count, nil
}
