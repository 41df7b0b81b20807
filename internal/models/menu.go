package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DishCategory is the course a dish belongs to. Menus are served in the
// traditional course order: entree, poisson, plat_principal, fromage, dessert.
type DishCategory string

const (
	DishStarter    DishCategory = "entree"
	DishFish       DishCategory = "poisson"
	DishMainCourse DishCategory = "plat_principal"
	DishCheese     DishCategory = "fromage"
	DishDessert    DishCategory = "dessert"
)

// Menu represents a catering menu priced per person.
type Menu struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"nom" json:"nom"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"prix" json:"prix"`
	Theme       *string         `db:"theme" json:"theme"`
	Diet        *string         `db:"regime" json:"regime"`
	Image       *string         `db:"image" json:"image"`
	MinGuests   int             `db:"minimum_personnes" json:"minimum_personnes"`
	Active      bool            `db:"actif" json:"actif"`
	CreatedAt   time.Time       `db:"date_creation" json:"date_creation"`
}

// Dish represents a single course within a menu.
type Dish struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	MenuID      uuid.UUID    `db:"menu_id" json:"menu_id"`
	Name        string       `db:"nom" json:"nom"`
	Category    DishCategory `db:"categorie" json:"categorie"`
	Description *string      `db:"description" json:"description"`
}

// MenuDetail is the GET /api/menus/{id} response shape.
type MenuDetail struct {
	Menu   Menu   `json:"menu"`
	Dishes []Dish `json:"plats"`
}

// MenuRequest is used for menu creation by employees.
type MenuRequest struct {
	Name        string          `json:"nom"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"prix"`
	Theme       *string         `json:"theme"`
	Diet        *string         `json:"regime"`
	Image       *string         `json:"image"`
	MinGuests   int             `json:"minimum_personnes"`
}
