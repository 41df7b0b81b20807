package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleEmployee UserRole = "employe"
	RoleAdmin    UserRole = "admin"
)

// AtLeast reports whether the role satisfies a required capability level.
// Roles are strictly ordered: client < employe < admin.
func (r UserRole) AtLeast(required UserRole) bool {
	return roleRank(r) >= roleRank(required)
}

func roleRank(r UserRole) int {
	switch r {
	case RoleClient:
		return 1
	case RoleEmployee:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	LastName     string    `db:"nom" json:"nom"`
	FirstName    string    `db:"prenom" json:"prenom"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"telephone" json:"telephone"`
	PasswordHash string    `db:"mot_de_passe" json:"-"` // Never expose in JSON
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"date_creation" json:"date_creation"`
}

// RegisterRequest is the /api/inscription request body.
type RegisterRequest struct {
	LastName  string  `json:"nom"`
	FirstName string  `json:"prenom"`
	Email     string  `json:"email"`
	Phone     *string `json:"telephone"`
	Password  string  `json:"mot_de_passe"`
}

// LoginRequest is the /api/connexion request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"mot_de_passe"`
}

// EmployeeRequest is used by admins to create employee accounts.
type EmployeeRequest struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Password  string `json:"mot_de_passe"`
}
