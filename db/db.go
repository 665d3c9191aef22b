package db

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/ninja-software/terror/v2"
)

type SortByDir string

const (
	SortByDirAsc  SortByDir = "asc"
	SortByDirDesc SortByDir = "desc"
)

func (d SortByDir) IsValid() error {
	switch d {
	case SortByDirAsc, SortByDirDesc:
		return nil
	}
	return terror.Error(fmt.Errorf("invalid sort direction %q", string(d)))
}

// Conn is the subset of pgx used by this package. A *pgxpool.Pool, a
// single *pgxpool.Conn and a pgx.Tx all satisfy it, so callers own the
// connection lifecycle and inject whichever scope they need.
type Conn interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

var (
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	alnumOnlyRegexp  = regexp.MustCompile(`[^a-z0-9-. ]`)
)

// ParseQueryText converts free text into a to_tsquery expression with a
// prefix match on every keyword. Returns "" when nothing searchable
// survives sanitization.
func ParseQueryText(queryText string, matchAll bool) string {
	// sanity check
	if queryText == "" {
		return ""
	}

	keywords := strings.ToLower(strings.TrimSpace(queryText))
	keywords = whitespaceRegexp.ReplaceAllString(keywords, " ")
	keywords = alnumOnlyRegexp.ReplaceAllString(keywords, "")

	var keywords2 []string
	for _, keyword := range strings.Split(keywords, " ") {
		// skip blank, to prevent error on construct sql search
		if len(keyword) == 0 {
			continue
		}

		// add prefix for partial word search
		keywords2 = append(keywords2, keyword+":*")
	}
	if !matchAll {
		return strings.Join(keywords2, " | ")
	}
	return strings.Join(keywords2, " & ")
}
