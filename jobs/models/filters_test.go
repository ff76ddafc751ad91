package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
)

func TestJobSearchFilters(t *testing.T) {
	tests := []struct {
		name     string
		criteria sqlhelper.Fields
		sql      string
		values   []interface{}
	}{
		{
			name:     "all keys",
			criteria: sqlhelper.Fields{{Key: "title", Value: "dev"}, {Key: "minSalary", Value: 70000}, {Key: "hasEquity", Value: true}},
			sql:      "title ILIKE '%' || $1 || '%' AND salary >= $2 AND equity > 0",
			values:   []interface{}{"dev", 70000},
		},
		{
			name:     "hasEquity false is dropped",
			criteria: sqlhelper.Fields{{Key: "hasEquity", Value: false}, {Key: "minSalary", Value: 100}},
			sql:      "salary >= $1",
			values:   []interface{}{100},
		},
		{
			name:     "hasEquity first binds nothing",
			criteria: sqlhelper.Fields{{Key: "hasEquity", Value: true}, {Key: "title", Value: "j"}},
			sql:      "equity > 0 AND title ILIKE '%' || $1 || '%'",
			values:   []interface{}{"j"},
		},
		{
			name:     "only hasEquity false",
			criteria: sqlhelper.Fields{{Key: "hasEquity", Value: false}},
			sql:      "TRUE",
			values:   []interface{}{},
		},
		{
			name:     "hasEquity must be boolean true",
			criteria: sqlhelper.Fields{{Key: "hasEquity", Value: "true"}, {Key: "title", Value: "j"}},
			sql:      "title ILIKE '%' || $1 || '%'",
			values:   []interface{}{"j"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, err := JobSearchFilters.Where(tt.criteria)
			require.NoError(t, err)
			require.Equal(t, tt.sql, clause.SQL)
			require.Equal(t, tt.values, clause.Values)
		})
	}
}

func TestJobSearchFilters_Errors(t *testing.T) {
	_, err := JobSearchFilters.Where(sqlhelper.Fields{})
	require.True(t, httperrors.IsBadRequest(err))

	_, err = JobSearchFilters.Where(sqlhelper.Fields{{Key: "nameLike", Value: "j"}})
	require.True(t, httperrors.IsBadRequest(err))
	require.Contains(t, err.Error(), "title, minSalary, hasEquity")
}
