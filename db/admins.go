package db

import (
	"context"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/types"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/ninja-software/terror/v2"
)

// AdminCreate inserts a back-office account. Password must already be
// hashed (crypto.HashPassword).
func AdminCreate(ctx context.Context, conn Conn, admin *types.Admin) error {
	q := `--sql
		INSERT INTO admin (login, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, login, password, role`
	err := pgxscan.Get(ctx, conn, admin, q, admin.Login, admin.Password, admin.Role)
	if err != nil {
		return terror.Error(err)
	}
	return nil
}

// AdminByLogin returns an admin account by its login name.
func AdminByLogin(ctx context.Context, conn Conn, login string) (*types.Admin, error) {
	admin := &types.Admin{}
	q := `--sql
		SELECT id, login, password, role
		FROM admin
		WHERE login = $1`
	err := pgxscan.Get(ctx, conn, admin, q, login)
	if err != nil {
		return nil, terror.Error(err)
	}
	return admin, nil
}
