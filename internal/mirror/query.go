package mirror

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByName     = "name"
	orderByModified = "last_modified"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByName:     "name ASC",
	orderByModified: "last_modified DESC NULLS LAST",
}

const defaultOrderBy = "name ASC"

const baseSuppliersSelect = `SELECT uuid, name, supplier_url, logo, summary, last_modified
FROM suppliers`

const countSuppliersSelect = "SELECT COUNT(*) FROM suppliers"

// SupplierQuery filters and pages mirrored suppliers.
type SupplierQuery struct {
	// Name matches suppliers whose name contains it, ignoring case.
	Name    string
	OrderBy string
	Limit   int
	Offset  int
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a supplier
// query. It returns the data query, the count query and their positional
// parameters.
func (q *SupplierQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var whereClause string
	if name := strings.TrimSpace(q.Name); name != "" {
		whereClause = " WHERE name ILIKE $1"
		args = append(args, "%"+escapeLike(name)+"%")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseSuppliersSelect, whereClause, orderClause, q.EffectiveLimit(), q.EffectiveOffset(),
	)
	countSQL = countSuppliersSelect + whereClause

	return dataSQL, countSQL, args
}

// EffectiveLimit is the page size ToSQL applies: Limit clamped to
// [1, 500], defaulting to 50.
func (q *SupplierQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

// EffectiveOffset is Offset floored at zero.
func (q *SupplierQuery) EffectiveOffset() int {
	return max(q.Offset, 0)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so s matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
