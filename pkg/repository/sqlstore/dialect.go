package sqlstore

import (
	"fmt"
	"time"
)

// Dialect captures the few SQL differences between database/sql backends.
type Dialect struct {
	Name string
	// Param renders the n-th (1-based) bind parameter; a parameter may be
	// referenced more than once.
	Param func(n int) string
	// Contains renders "haystack contains needle" as a boolean expression.
	Contains func(haystack, needle string) string
	// Page renders the clause following ORDER BY.
	Page func(limit, offset string) string
	// DateArg converts a date into a bind value comparable with date_until.
	DateArg func(time.Time) any
}

var SQLite = Dialect{
	Name:     "sqlite",
	Param:    func(n int) string { return fmt.Sprintf("?%d", n) },
	Contains: func(h, n string) string { return fmt.Sprintf("instr(%s, %s) > 0", h, n) },
	Page:     func(limit, offset string) string { return fmt.Sprintf("LIMIT %s OFFSET %s", limit, offset) },
	// dates are stored as ISO-8601 text
	DateArg: func(t time.Time) any { return t.Format("2006-01-02") },
}

var SQLServer = Dialect{
	Name:     "sqlserver",
	Param:    func(n int) string { return fmt.Sprintf("@p%d", n) },
	Contains: func(h, n string) string { return fmt.Sprintf("CHARINDEX(%s, %s) > 0", n, h) },
	Page: func(limit, offset string) string {
		return fmt.Sprintf("OFFSET %s ROWS FETCH NEXT %s ROWS ONLY", offset, limit)
	},
	DateArg: func(t time.Time) any { return t },
}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Name:
		return SQLite, nil
	case SQLServer.Name:
		return SQLServer, nil
	default:
		return Dialect{}, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}
