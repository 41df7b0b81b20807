package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/pricing"
	"github.com/vite-gourmand/catering-service/internal/session"
	"github.com/vite-gourmand/catering-service/internal/stats"
)

// MenuReader is the menu access the order service needs.
type MenuReader interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Menu, error)
}

// OrderStore is the order persistence the order service needs.
type OrderStore interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

// Feed receives order events for the back-office live view. Broadcasts are
// fire-and-forget.
type Feed interface {
	Broadcast(event string, payload any)
}

// OrderService validates and persists orders.
type OrderService struct {
	menus    MenuReader
	orders   OrderStore
	recorder stats.Recorder
	feed     Feed
}

// NewOrderService creates a new order service. feed may be nil.
func NewOrderService(menus MenuReader, orders OrderStore, recorder stats.Recorder, feed Feed) *OrderService {
	return &OrderService{
		menus:    menus,
		orders:   orders,
		recorder: recorder,
		feed:     feed,
	}
}

// Create validates an order request and persists the priced order. The
// checks run in a fixed sequence, each with its own error: caller identity,
// request completeness, menu existence, menu minimum.
func (s *OrderService) Create(ctx context.Context, identity *session.Identity, req models.OrderRequest) (*models.OrderSummary, error) {
	if identity == nil {
		return nil, Unauthorized("Vous devez être connecté.")
	}

	if req.MenuID == nil || req.Guests <= 0 {
		return nil, Invalid("Menu et nombre de personnes requis.")
	}

	menu, err := s.menus.GetActiveByID(ctx, *req.MenuID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Menu non trouvé.")
		}
		return nil, Internal(err)
	}

	if req.Guests < menu.MinGuests {
		return nil, Invalid(fmt.Sprintf("Minimum %d personnes pour ce menu.", menu.MinGuests))
	}

	var eventDate *time.Time
	if req.EventDate != nil && *req.EventDate != "" {
		d, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, Invalid("Date d'événement invalide (format AAAA-MM-JJ).")
		}
		eventDate = &d
	}

	quote := pricing.Compute(menu.Price, req.Guests)

	order := models.Order{
		UserID:          identity.ID,
		MenuID:          menu.ID,
		Guests:          req.Guests,
		UnitPrice:       quote.UnitPrice,
		DiscountPercent: quote.DiscountPercent,
		Total:           quote.Total,
		EventDate:       eventDate,
		DeliveryAddress: req.DeliveryAddress,
		Comment:         req.Comment,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, Internal(err)
	}

	// Analytics is a side channel; a failed write never fails the order
	if err := s.recorder.Record(ctx, stats.Event{
		Type: stats.EventOrder,
		Details: map[string]any{
			"menu_id":    menu.ID.String(),
			"prix_total": quote.Total.InexactFloat64(),
			"personnes":  req.Guests,
		},
	}); err != nil {
		logrus.WithError(err).Warn("failed to record order stat")
	}

	summary := &models.OrderSummary{
		ID:        created.ID,
		MenuName:  menu.Name,
		Guests:    created.Guests,
		UnitPrice: created.UnitPrice,
		Discount:  pricing.FormatDiscount(created.DiscountPercent),
		Total:     pricing.FormatEuros(created.Total),
	}

	if s.feed != nil {
		s.feed.Broadcast("commande.nouvelle", summary)
	}

	return summary, nil
}

// ListMine retrieves the caller's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, identity *session.Identity) ([]models.Order, error) {
	if identity == nil {
		return nil, Unauthorized("Vous devez être connecté.")
	}

	orders, err := s.orders.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, Internal(err)
	}

	return orders, nil
}

// ListAll retrieves every order for the back-office views.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, Internal(err)
	}

	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle state.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if !status.Valid() {
		return Invalid("Statut invalide.")
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound("Commande non trouvée.")
		}
		return Internal(err)
	}

	if s.feed != nil {
		s.feed.Broadcast("commande.statut", map[string]string{
			"id":     id.String(),
			"statut": string(status),
		})
	}

	return nil
}
