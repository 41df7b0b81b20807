package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// OrderRepository handles order data access
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order. Pricing columns are written once here and
// never updated afterwards.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	query := `
		INSERT INTO commandes (utilisateur_id, menu_id, nombre_personnes, prix_unitaire,
			reduction, prix_total, date_evenement, adresse_livraison, commentaire)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, utilisateur_id, menu_id, nombre_personnes, prix_unitaire,
			reduction, prix_total, statut, date_evenement, adresse_livraison,
			commentaire, date_commande
	`

	var createdOrder models.Order
	err := r.db.GetContext(
		ctx,
		&createdOrder,
		query,
		order.UserID,
		order.MenuID,
		order.Guests,
		order.UnitPrice,
		order.DiscountPercent,
		order.Total,
		order.EventDate,
		order.DeliveryAddress,
		order.Comment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &createdOrder, nil
}

// ListByUser retrieves a user's orders newest-first, with the menu name joined
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	query := `
		SELECT c.id, c.utilisateur_id, c.menu_id, c.nombre_personnes, c.prix_unitaire,
			c.reduction, c.prix_total, c.statut, c.date_evenement, c.adresse_livraison,
			c.commentaire, c.date_commande, m.nom AS menu_nom
		FROM commandes c
		JOIN menus m ON c.menu_id = m.id
		WHERE c.utilisateur_id = $1
		ORDER BY c.date_commande DESC
	`

	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}

	return orders, nil
}

// ListAll retrieves every order with menu and client identity joined, for
// the back-office views
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT c.id, c.utilisateur_id, c.menu_id, c.nombre_personnes, c.prix_unitaire,
			c.reduction, c.prix_total, c.statut, c.date_evenement, c.adresse_livraison,
			c.commentaire, c.date_commande, m.nom AS menu_nom,
			u.nom AS client_nom, u.prenom AS client_prenom, u.email AS client_email
		FROM commandes c
		JOIN menus m ON c.menu_id = m.id
		JOIN utilisateurs u ON c.utilisateur_id = u.id
		ORDER BY c.date_commande DESC
	`

	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus updates an order's status
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `
		UPDATE commandes
		SET statut = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, sql.ErrNoRows)
	}

	return nil
}

// Count returns the total number of orders
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM commandes`)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// Revenue sums the totals of all orders that were not cancelled
func (r *OrderRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	query := `SELECT SUM(prix_total) FROM commandes WHERE statut != 'annulee'`
	err := r.db.GetContext(ctx, &revenue, query)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}
