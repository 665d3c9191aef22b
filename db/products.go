package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/types"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/ninja-software/terror/v2"
	"github.com/shopspring/decimal"
)

type ProductColumn string

const (
	ProductColumnBarcode     ProductColumn = "barcode"
	ProductColumnName        ProductColumn = "name"
	ProductColumnBranchID    ProductColumn = "branch_id"
	ProductColumnPrice       ProductColumn = "price"
	ProductColumnRealPrice   ProductColumn = "real_price"
	ProductColumnStock       ProductColumn = "stock"
	ProductColumnCategoryID  ProductColumn = "category_id"
	ProductColumnDescription ProductColumn = "description"

	ProductColumnCreatedAt ProductColumn = "created_at"
	ProductColumnUpdatedAt ProductColumn = "updated_at"
)

func (pc ProductColumn) IsValid() error {
	switch pc {
	case ProductColumnBarcode,
		ProductColumnName,
		ProductColumnBranchID,
		ProductColumnPrice,
		ProductColumnRealPrice,
		ProductColumnStock,
		ProductColumnCategoryID,
		ProductColumnDescription,
		ProductColumnCreatedAt,
		ProductColumnUpdatedAt:
		return nil
	}
	return terror.Error(fmt.Errorf("invalid product column type"))
}

// ErrNoUpdateFields is returned when a sparse update carries no fields.
var ErrNoUpdateFields = errors.New("no fields supplied to update")

const ProductGetQuery string = `--sql
SELECT
	p.barcode, p.name, p.branch_id, b.name AS branch_name,
	p.price, p.real_price, p.stock, p.category_id, p.description,
	p.tegs, p.image, p.created_at, p.updated_at
FROM product p
INNER JOIN branch b ON b.id = p.branch_id
`

// joined column list reused by the insert/update/delete CTE queries
const productRowColumns = `--sql
	r.barcode, r.name, r.branch_id, b.name AS branch_name,
	r.price, r.real_price, r.stock, r.category_id, r.description,
	r.tegs, r.image, r.created_at, r.updated_at`

// ProductListResult is the paged listing envelope.
type ProductListResult struct {
	Data       []*types.Product `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// productSearchCondition builds the search predicate once so the count
// query and the page query cannot drift apart: a simple-config full-text
// match on name, OR a case-insensitive substring match on name, OR the
// same on barcode. Returns "" when search is blank.
func productSearchCondition(search string, args *[]interface{}) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}

	conditions := []string{}
	if xsearch := ParseQueryText(search, true); xsearch != "" {
		*args = append(*args, xsearch)
		conditions = append(conditions, fmt.Sprintf("to_tsvector('simple', p.name) @@ to_tsquery('simple', $%d)", len(*args)))
	}
	*args = append(*args, "%"+search+"%")
	conditions = append(conditions,
		fmt.Sprintf("p.name ILIKE $%d", len(*args)),
		fmt.Sprintf("p.barcode ILIKE $%d", len(*args)),
	)
	return "(" + strings.Join(conditions, " OR ") + ")"
}

// ProductList returns one page of products in offset pagination format,
// newest update first unless a sort column is given. Page numbers are
// 1-indexed; a page past the end returns empty data with a well-formed
// pagination block.
//
// The total and the page are read by two independent statements with no
// wrapping transaction, so they can observe different snapshots under
// concurrent writes.
func ProductList(ctx context.Context,
	conn Conn,
	page int,
	pageSize int,
	search string,
	filter *ListFilterRequest,
	sortBy ProductColumn,
	sortDir SortByDir,
) (*ProductListResult, error) {
	if page < 1 {
		return nil, terror.Error(fmt.Errorf("page must be >= 1, got %d", page))
	}
	if pageSize < 1 {
		return nil, terror.Error(fmt.Errorf("page size must be >= 1, got %d", pageSize))
	}

	// Prepare Filters
	var args []interface{}
	conditions := []string{}

	if filter != nil {
		filterConditions := []string{}
		for _, f := range filter.Items {
			column := ProductColumn(f.ColumnField)
			err := column.IsValid()
			if err != nil {
				return nil, terror.Error(err)
			}

			condition, value := GenerateListFilterSQL("p."+f.ColumnField, f.Value, f.OperatorValue, len(args)+1)
			if condition != "" {
				filterConditions = append(filterConditions, condition)
				args = append(args, value)
			}
		}

		if len(filterConditions) > 0 {
			conditions = append(conditions, "("+strings.Join(filterConditions, " "+string(filter.LinkOperator)+" ")+")")
		}
	}

	if searchCondition := productSearchCondition(search, &args); searchCondition != "" {
		conditions = append(conditions, searchCondition)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}

	// Get Total Found
	q := `--sql
		SELECT COUNT(p.barcode)
		FROM product p
		` + where
	totalRecords := 0
	err := pgxscan.Get(ctx, conn, &totalRecords, q, args...)
	if err != nil {
		return nil, terror.Error(err)
	}

	result := &ProductListResult{
		Data:       []*types.Product{},
		Pagination: NewPagination(totalRecords, page, pageSize),
	}
	if totalRecords == 0 {
		return result, nil
	}

	// Order and Limit
	orderBy := "ORDER BY p.updated_at DESC"
	if sortBy != "" {
		err := sortBy.IsValid()
		if err != nil {
			return nil, terror.Error(err)
		}
		err = sortDir.IsValid()
		if err != nil {
			return nil, terror.Error(err)
		}
		orderBy = fmt.Sprintf("ORDER BY p.%s %s", sortBy, sortDir)
	}
	offset := (page - 1) * pageSize

	// Get Paginated Result
	q = fmt.Sprintf(
		ProductGetQuery+`%s%s LIMIT %d OFFSET %d`,
		where,
		orderBy,
		pageSize,
		offset,
	)
	err = pgxscan.Select(ctx, conn, &result.Data, q, args...)
	if err != nil {
		return nil, terror.Error(err)
	}
	return result, nil
}

// ProductListAll is ProductList with no search filter; identical contract
// for identical page arguments.
func ProductListAll(ctx context.Context, conn Conn, page int, pageSize int) (*ProductListResult, error) {
	return ProductList(ctx, conn, page, pageSize, "", nil, "", "")
}

// ProductGet returns a product by its barcode. A missing barcode yields
// an error wrapping pgx.ErrNoRows.
func ProductGet(ctx context.Context, conn Conn, barcode string) (*types.Product, error) {
	product := &types.Product{}
	q := ProductGetQuery + `WHERE p.barcode = $1`
	err := pgxscan.Get(ctx, conn, product, q, barcode)
	if err != nil {
		return nil, terror.Error(err)
	}
	return product, nil
}

// ProductSearch returns every product matching the tri-part search
// predicate, unpaginated, in database order.
func ProductSearch(ctx context.Context, conn Conn, search string) ([]*types.Product, error) {
	var args []interface{}
	q := ProductGetQuery
	if searchCondition := productSearchCondition(search, &args); searchCondition != "" {
		q += "WHERE " + searchCondition
	}

	products := []*types.Product{}
	err := pgxscan.Select(ctx, conn, &products, q, args...)
	if err != nil {
		return nil, terror.Error(err)
	}
	return products, nil
}

// ProductCreate inserts a product and scans the stored row, including
// database-assigned defaults and the joined branch name, back into the
// argument. Zero-length tegs/image collections are stored as SQL NULL,
// never as an empty array literal.
func ProductCreate(ctx context.Context, conn Conn, product *types.Product) error {
	err := validProductTags(product.Tegs)
	if err != nil {
		return terror.Error(err)
	}

	q := `--sql
		WITH r AS (
			INSERT INTO product (barcode, name, branch_id, price, real_price, stock, category_id, description, tegs, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT` + productRowColumns + `
		FROM r
		INNER JOIN branch b ON b.id = r.branch_id`
	err = pgxscan.Get(ctx,
		conn,
		product,
		q,
		product.Barcode,
		product.Name,
		product.BranchID,
		product.Price,
		product.RealPrice,
		product.Stock,
		product.CategoryID,
		product.Description,
		textArrayOrNil(product.Tegs),
		textArrayOrNil(product.Image),
	)
	if err != nil {
		return terror.Error(err)
	}
	return nil
}

// ProductUpdateRequest is a sparse change set; nil fields are left
// untouched. A non-nil zero-length Tegs/Image clears the column to NULL,
// the same serialization the create path uses.
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	BranchID    *int             `json:"branch_id"`
	Price       *decimal.Decimal `json:"price"`
	RealPrice   *decimal.Decimal `json:"real_price"`
	Stock       *int             `json:"stock"`
	CategoryID  *int             `json:"category_id"`
	Description *string          `json:"description"`
	Tegs        []string         `json:"tegs"`
	Image       []string         `json:"image"`
}

// ProductUpdate applies a sparse update to the product with the given
// barcode and returns the updated row. An empty change set fails with
// ErrNoUpdateFields; a missing barcode with an error wrapping
// pgx.ErrNoRows.
func ProductUpdate(ctx context.Context, conn Conn, barcode string, req *ProductUpdateRequest) (*types.Product, error) {
	args := []interface{}{barcode}
	assignments := []string{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.BranchID != nil {
		set("branch_id", *req.BranchID)
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.RealPrice != nil {
		set("real_price", *req.RealPrice)
	}
	if req.Stock != nil {
		set("stock", *req.Stock)
	}
	if req.CategoryID != nil {
		set("category_id", *req.CategoryID)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Tegs != nil {
		err := validProductTags(req.Tegs)
		if err != nil {
			return nil, terror.Error(err)
		}
		set("tegs", textArrayOrNil(req.Tegs))
	}
	if req.Image != nil {
		set("image", textArrayOrNil(req.Image))
	}

	if len(assignments) == 0 {
		return nil, terror.Error(ErrNoUpdateFields, "no fields supplied to update")
	}
	assignments = append(assignments, "updated_at = now()")

	q := fmt.Sprintf(`--sql
		WITH r AS (
			UPDATE product
			SET %s
			WHERE barcode = $1
			RETURNING *
		)
		SELECT`+productRowColumns+`
		FROM r
		INNER JOIN branch b ON b.id = r.branch_id`,
		strings.Join(assignments, ", "),
	)
	product := &types.Product{}
	err := pgxscan.Get(ctx, conn, product, q, args...)
	if err != nil {
		return nil, terror.Error(err)
	}
	return product, nil
}

// ProductDelete removes the product with the given barcode and returns
// the deleted row. A missing barcode yields an error wrapping
// pgx.ErrNoRows.
func ProductDelete(ctx context.Context, conn Conn, barcode string) (*types.Product, error) {
	q := `--sql
		WITH r AS (
			DELETE FROM product
			WHERE barcode = $1
			RETURNING *
		)
		SELECT` + productRowColumns + `
		FROM r
		INNER JOIN branch b ON b.id = r.branch_id`
	product := &types.Product{}
	err := pgxscan.Get(ctx, conn, product, q, barcode)
	if err != nil {
		return nil, terror.Error(err)
	}
	return product, nil
}

func validProductTags(tegs []string) error {
	for _, t := range tegs {
		err := types.ProductTag(t).IsValid()
		if err != nil {
			return err
		}
	}
	return nil
}

// textArrayOrNil maps an empty collection to SQL NULL rather than '{}'.
func textArrayOrNil(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return ss
}
