package db

import (
	"context"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/types"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/ninja-software/terror/v2"
)

const BranchGetQuery string = `--sql
SELECT id, name, created_at
FROM branch
`

// BranchGet returns a branch by given ID
func BranchGet(ctx context.Context, conn Conn, branchID int) (*types.Branch, error) {
	branch := &types.Branch{}
	q := BranchGetQuery + `WHERE id = $1`
	err := pgxscan.Get(ctx, conn, branch, q, branchID)
	if err != nil {
		return nil, terror.Error(err)
	}
	return branch, nil
}

// BranchAll returns every branch, oldest first.
func BranchAll(ctx context.Context, conn Conn) ([]*types.Branch, error) {
	branches := []*types.Branch{}
	q := BranchGetQuery + `ORDER BY id`
	err := pgxscan.Select(ctx, conn, &branches, q)
	if err != nil {
		return nil, terror.Error(err)
	}
	return branches, nil
}

// BranchCreate will create a new branch
func BranchCreate(ctx context.Context, conn Conn, branch *types.Branch) error {
	q := `--sql
		INSERT INTO branch (name)
		VALUES ($1)
		RETURNING id, name, created_at`
	err := pgxscan.Get(ctx, conn, branch, q, branch.Name)
	if err != nil {
		return terror.Error(err)
	}
	return nil
}
