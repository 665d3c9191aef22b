package db

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"
)

// IsSchemaDirty counts migrations golang-migrate left in a dirty state.
func IsSchemaDirty(ctx context.Context, conn Conn, count *int) error {
	q := `SELECT count(*) FROM schema_migrations where dirty is true`
	return pgxscan.Get(ctx, conn, count, q)
}
