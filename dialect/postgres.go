package dialect

import (
	"strconv"
	"strings"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// CastPlaceholder renders placeholder n followed by the native cast for kind,
// e.g. "$3::float8[]".
func (p Postgres) CastPlaceholder(n int, kind Kind, isArray bool) string {
	return p.Placeholder(n) + "::" + p.Cast(kind, isArray)
}

func (p Postgres) Cast(kind Kind, isArray bool) string {
	return Cast(kind, isArray)
}
