package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/session"
	"github.com/vite-gourmand/catering-service/internal/stats"
)

type fakeMenus struct {
	menus   map[uuid.UUID]*models.Menu
	lookups int
}

func (f *fakeMenus) GetActiveByID(_ context.Context, id uuid.UUID) (*models.Menu, error) {
	f.lookups++
	if m, ok := f.menus[id]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("failed to get active menu: %w", sql.ErrNoRows)
}

type fakeOrders struct {
	created []models.Order
	byUser  map[uuid.UUID][]models.Order
	missing map[uuid.UUID]bool
}

func (f *fakeOrders) Create(_ context.Context, order models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	f.created = append(f.created, order)
	return &order, nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Order, error) {
	return f.byUser[userID], nil
}

func (f *fakeOrders) ListAll(context.Context) ([]models.Order, error) {
	return f.created, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id uuid.UUID, _ models.OrderStatus) error {
	if f.missing[id] {
		return fmt.Errorf("order %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

type fakeRecorder struct {
	events []stats.Event
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, e stats.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeRecorder) CountByType(context.Context, string) (int64, error) { return 0, nil }

func clientIdentity() *session.Identity {
	return &session.Identity{
		ID:        uuid.New(),
		LastName:  "Durand",
		FirstName: "Claire",
		Email:     "claire@example.com",
		Role:      models.RoleClient,
	}
}

func newTestMenu(price string, minGuests int) *models.Menu {
	return &models.Menu{
		ID:        uuid.New(),
		Name:      "Menu Prestige",
		Price:     decimal.RequireFromString(price),
		MinGuests: minGuests,
		Active:    true,
	}
}

func orderRequest(menuID uuid.UUID, guests int) models.OrderRequest {
	return models.OrderRequest{MenuID: &menuID, Guests: guests}
}

func TestOrderCreateRequiresIdentity(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	svc := NewOrderService(menus, &fakeOrders{}, &fakeRecorder{}, nil)

	_, err := svc.Create(context.Background(), nil, orderRequest(menu.ID, 6))

	require.Error(t, err)
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
	// The identity check comes before everything else: no menu was consulted
	assert.Zero(t, menus.lookups)
}

func TestOrderCreateRequiresMenuAndGuests(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	svc := NewOrderService(menus, &fakeOrders{}, &fakeRecorder{}, nil)

	_, err := svc.Create(context.Background(), clientIdentity(), models.OrderRequest{Guests: 6})
	assert.Equal(t, CodeInvalid, CodeOf(err))

	_, err = svc.Create(context.Background(), clientIdentity(), models.OrderRequest{MenuID: &menu.ID})
	assert.Equal(t, CodeInvalid, CodeOf(err))
}

func TestOrderCreateUnknownMenuIsNotFound(t *testing.T) {
	svc := NewOrderService(&fakeMenus{}, &fakeOrders{}, &fakeRecorder{}, nil)

	// NotFound regardless of headcount
	for _, guests := range []int{1, 6, 100} {
		_, err := svc.Create(context.Background(), clientIdentity(), orderRequest(uuid.New(), guests))
		assert.Equal(t, CodeNotFound, CodeOf(err))
	}
}

func TestOrderCreateEnforcesMenuMinimum(t *testing.T) {
	// Minimum above the discount threshold: the minimum check still wins
	menu := newTestMenu("50.00", 10)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	orders := &fakeOrders{}
	svc := NewOrderService(menus, orders, &fakeRecorder{}, nil)

	_, err := svc.Create(context.Background(), clientIdentity(), orderRequest(menu.ID, 8))

	require.Error(t, err)
	assert.Equal(t, CodeInvalid, CodeOf(err))
	assert.Contains(t, MessageOf(err), "10", "message must state the menu minimum")
	assert.Empty(t, orders.created)
}

func TestOrderCreateAppliesGroupDiscount(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	orders := &fakeOrders{}
	svc := NewOrderService(menus, orders, &fakeRecorder{}, nil)

	summary, err := svc.Create(context.Background(), clientIdentity(), orderRequest(menu.ID, 6))

	require.NoError(t, err)
	assert.Equal(t, "Menu Prestige", summary.MenuName)
	assert.Equal(t, "10%", summary.Discount)
	assert.Equal(t, "270.00 €", summary.Total)

	require.Len(t, orders.created, 1)
	created := orders.created[0]
	assert.Equal(t, 10, created.DiscountPercent)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("270.00")))
	assert.True(t, created.UnitPrice.Equal(menu.Price), "unit price is snapshotted")
}

func TestOrderCreateNoDiscountAtThreshold(t *testing.T) {
	menu := newTestMenu("80.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	svc := NewOrderService(menus, &fakeOrders{}, &fakeRecorder{}, nil)

	summary, err := svc.Create(context.Background(), clientIdentity(), orderRequest(menu.ID, 4))

	require.NoError(t, err)
	assert.Equal(t, "0%", summary.Discount)
	assert.Equal(t, "320.00 €", summary.Total)
}

func TestOrderCreateSurvivesAnalyticsFailure(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	recorder := &fakeRecorder{err: fmt.Errorf("mongo down")}
	svc := NewOrderService(menus, &fakeOrders{}, recorder, nil)

	_, err := svc.Create(context.Background(), clientIdentity(), orderRequest(menu.ID, 6))

	assert.NoError(t, err)
}

func TestOrderCreateRecordsAnalyticsEvent(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	recorder := &fakeRecorder{}
	svc := NewOrderService(menus, &fakeOrders{}, recorder, nil)

	_, err := svc.Create(context.Background(), clientIdentity(), orderRequest(menu.ID, 7))

	require.NoError(t, err)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, stats.EventOrder, recorder.events[0].Type)
	assert.Equal(t, 7, recorder.events[0].Details["personnes"])
}

func TestOrderCreateRejectsBadEventDate(t *testing.T) {
	menu := newTestMenu("50.00", 2)
	menus := &fakeMenus{menus: map[uuid.UUID]*models.Menu{menu.ID: menu}}
	svc := NewOrderService(menus, &fakeOrders{}, &fakeRecorder{}, nil)

	bad := "31/12/2026"
	req := orderRequest(menu.ID, 6)
	req.EventDate = &bad

	_, err := svc.Create(context.Background(), clientIdentity(), req)
	assert.Equal(t, CodeInvalid, CodeOf(err))
}

func TestOrderUpdateStatus(t *testing.T) {
	missing := uuid.New()
	orders := &fakeOrders{missing: map[uuid.UUID]bool{missing: true}}
	svc := NewOrderService(&fakeMenus{}, orders, &fakeRecorder{}, nil)

	assert.NoError(t, svc.UpdateStatus(context.Background(), uuid.New(), models.OrderStatusConfirmed))

	err := svc.UpdateStatus(context.Background(), uuid.New(), models.OrderStatus("expediee"))
	assert.Equal(t, CodeInvalid, CodeOf(err))

	err = svc.UpdateStatus(context.Background(), missing, models.OrderStatusCancelled)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestOrderListMineRequiresIdentity(t *testing.T) {
	svc := NewOrderService(&fakeMenus{}, &fakeOrders{}, &fakeRecorder{}, nil)

	_, err := svc.ListMine(context.Background(), nil)
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
}
