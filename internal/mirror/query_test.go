package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupplierQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         SupplierQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: SupplierQuery{},
			wantDataHas: []string{
				"FROM suppliers",
				"ORDER BY name ASC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM suppliers",
		},
		{
			name:         "name filter",
			query:        SupplierQuery{Name: "acme"},
			wantDataHas:  []string{"WHERE name ILIKE $1"},
			wantCountSQL: "SELECT COUNT(*) FROM suppliers WHERE name ILIKE $1",
			wantArgs:     []any{"%acme%"},
		},
		{
			name:         "name filter escapes wildcards",
			query:        SupplierQuery{Name: `50%_off\`},
			wantCountSQL: "SELECT COUNT(*) FROM suppliers WHERE name ILIKE $1",
			wantArgs:     []any{`%50\%\_off\\%`},
		},
		{
			name:          "blank name is ignored",
			query:         SupplierQuery{Name: "   "},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM suppliers",
		},
		{
			name:         "order by last modified",
			query:        SupplierQuery{OrderBy: "last_modified"},
			wantDataHas:  []string{"ORDER BY last_modified DESC NULLS LAST"},
			wantCountSQL: "SELECT COUNT(*) FROM suppliers",
		},
		{
			name:          "invalid order by falls back to default",
			query:         SupplierQuery{OrderBy: "name; DROP TABLE suppliers"},
			wantDataHas:   []string{"ORDER BY name ASC"},
			wantDataNotIn: []string{"DROP"},
			wantCountSQL:  "SELECT COUNT(*) FROM suppliers",
		},
		{
			name:         "limit and offset",
			query:        SupplierQuery{Limit: 10, Offset: 20},
			wantDataHas:  []string{"LIMIT 10", "OFFSET 20"},
			wantCountSQL: "SELECT COUNT(*) FROM suppliers",
		},
		{
			name:         "limit is capped",
			query:        SupplierQuery{Limit: 10000, Offset: -5},
			wantDataHas:  []string{"LIMIT 500", "OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM suppliers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			assert.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
		})
	}
}
