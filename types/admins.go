package types

import (
	"github.com/gofrs/uuid"
)

type AdminRole string

const (
	AdminRoleSuper   AdminRole = "superadmin"
	AdminRoleManager AdminRole = "manager"
)

// Admin is a back-office account. Nothing in the product data access
// depends on it; it exists alongside the catalog schema.
type Admin struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Login    string    `json:"login" db:"login"`
	Password string    `json:"-" db:"password"`
	Role     AdminRole `json:"role" db:"role"`
}
