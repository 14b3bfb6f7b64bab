package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared Squirrel statement builder configured for PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
