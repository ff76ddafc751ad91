package sqlhelper

import (
	"math"
	"testing"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/stretchr/testify/require"
)

func testFilters() *FilterSet {
	return NewFilterSet("widget",
		func(criteria Fields) []string {
			if v, ok := criteria.Lookup("minSize"); ok && v.(int) < 0 {
				return []string{"minSize must be 0 or greater"}
			}
			return nil
		},
		Filter{Key: "name", Predicate: "name ILIKE '%' || $? || '%'", Transform: String},
		Filter{Key: "minSize", Predicate: "size >= $?", Transform: Integer},
		Filter{Key: "shiny", Predicate: "shine > 0", Transform: OnlyTrue},
	)
}

func TestFilterSetWhere(t *testing.T) {
	filters := testFilters()

	t.Run("single filter", func(t *testing.T) {
		clause, err := filters.Where(Fields{{Key: "name", Value: "net"}})
		require.NoError(t, err)
		require.Equal(t, "name ILIKE '%' || $1 || '%'", clause.SQL)
		require.Equal(t, []interface{}{"net"}, clause.Values)
	})

	t.Run("criteria order drives placeholders", func(t *testing.T) {
		clause, err := filters.Where(Fields{{Key: "minSize", Value: 4.0}, {Key: "name", Value: "net"}})
		require.NoError(t, err)
		require.Equal(t, "size >= $1 AND name ILIKE '%' || $2 || '%'", clause.SQL)
		require.Equal(t, []interface{}{4, "net"}, clause.Values)
	})

	t.Run("dropped criterion consumes no placeholder", func(t *testing.T) {
		clause, err := filters.Where(Fields{{Key: "shiny", Value: false}, {Key: "minSize", Value: 3}})
		require.NoError(t, err)
		require.Equal(t, "size >= $1", clause.SQL)
		require.Equal(t, []interface{}{3}, clause.Values)
	})

	t.Run("parameterless predicate binds nothing", func(t *testing.T) {
		clause, err := filters.Where(Fields{{Key: "name", Value: "a"}, {Key: "shiny", Value: true}, {Key: "minSize", Value: 1}})
		require.NoError(t, err)
		require.Equal(t, "name ILIKE '%' || $1 || '%' AND shine > 0 AND size >= $2", clause.SQL)
		require.Equal(t, []interface{}{"a", 1}, clause.Values)
	})

	t.Run("everything dropped yields TRUE", func(t *testing.T) {
		clause, err := filters.Where(Fields{{Key: "shiny", Value: false}})
		require.NoError(t, err)
		require.Equal(t, "TRUE", clause.SQL)
		require.Empty(t, clause.Values)
	})

	t.Run("empty criteria", func(t *testing.T) {
		_, err := filters.Where(Fields{})
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "No search parameters")
	})

	t.Run("only nil values count as absent", func(t *testing.T) {
		_, err := filters.Where(Fields{{Key: "name", Value: nil}})
		require.True(t, httperrors.IsBadRequest(err))
	})

	t.Run("unknown key fails loudly", func(t *testing.T) {
		_, err := filters.Where(Fields{{Key: "name", Value: "a"}, {Key: "color", Value: "red"}})
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "color")
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := filters.Where(Fields{{Key: "name", Value: "a"}, {Key: "name", Value: "b"}})
		require.True(t, httperrors.IsBadRequest(err))
	})

	t.Run("transform error", func(t *testing.T) {
		_, err := filters.Where(Fields{{Key: "minSize", Value: "ten"}})
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "minSize must be an integer")
	})

	t.Run("validation hook", func(t *testing.T) {
		_, err := filters.Where(Fields{{Key: "minSize", Value: -1}})
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "minSize must be 0 or greater")
	})

	t.Run("idempotent", func(t *testing.T) {
		criteria := Fields{{Key: "name", Value: "a"}, {Key: "minSize", Value: 2}}
		first, err := filters.Where(criteria)
		require.NoError(t, err)
		second, err := filters.Where(criteria)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestNewFilterSetRejectsDuplicateKeys(t *testing.T) {
	require.Panics(t, func() {
		NewFilterSet("dup", nil, Filter{Key: "a", Predicate: "a = $?"}, Filter{Key: "a", Predicate: "a = $?"})
	})
}

func TestToInt(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
		ok   bool
	}{
		{5, 5, true},
		{int64(7), 7, true},
		{float64(3), 3, true},
		{3.5, 0, false},
		{"3", 0, false},
		{nil, 0, false},
		{uint(9), 9, true},
		{uint64(math.MaxUint64), 0, false},
		{int64(math.MaxInt), math.MaxInt, true},
		{1e20, 0, false},
		{-1e20, 0, false},
		{float64(math.MinInt), math.MinInt, true},
		{-float64(math.MinInt), 0, false},
	}
	for _, tc := range cases {
		got, ok := ToInt(tc.in)
		require.Equal(t, tc.ok, ok, "%v", tc.in)
		require.Equal(t, tc.want, got, "%v", tc.in)
	}
}
