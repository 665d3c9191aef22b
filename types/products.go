package types

import (
	"fmt"
	"time"

	"github.com/ninja-software/terror/v2"
	"github.com/shopspring/decimal"
)

// ProductTag marks a product for storefront shelves.
type ProductTag string

const (
	ProductTagNew  ProductTag = "new"
	ProductTagHit  ProductTag = "hit"
	ProductTagSale ProductTag = "sale"
)

func (t ProductTag) IsValid() error {
	switch t {
	case ProductTagNew,
		ProductTagHit,
		ProductTagSale:
		return nil
	}
	return terror.Error(fmt.Errorf("invalid product tag %q", string(t)))
}

// Product is an object representing the database table, enriched with the
// owning branch name on read paths.
type Product struct {
	Barcode     string          `json:"barcode" db:"barcode"`
	Name        string          `json:"name" db:"name"`
	BranchID    int             `json:"branch_id" db:"branch_id"`
	BranchName  string          `json:"branch_name" db:"branch_name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	RealPrice   decimal.Decimal `json:"real_price" db:"real_price"`
	Stock       int             `json:"stock" db:"stock"`
	CategoryID  int             `json:"category_id" db:"category_id"`
	Description *string         `json:"description" db:"description"`
	Tegs        []string        `json:"tegs" db:"tegs"`
	Image       []string        `json:"image" db:"image"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
