package db

import "embed"

// MigrationsFS holds the golang-migrate SQL migrations. Both the cmd
// layer and the test harness apply them from here.
//
//go:embed migrations
var MigrationsFS embed.FS
