package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
)

type widgetUpdate struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Size   *int    `json:"size" validate:"omitempty,gte=0"`
	Equity *string `json:"equity" validate:"omitempty,equity"`
	Secret string  `json:"-"`
}

type widgetSearch struct {
	Name    *string `schema:"name"`
	MinSize *int    `schema:"minSize" validate:"omitempty,gte=0"`
	Shiny   *bool   `schema:"shiny"`
}

func TestGetValidator_Singleton(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}

func TestDecodeJSON(t *testing.T) {
	t.Run("partial payload keeps declaration order", func(t *testing.T) {
		var req widgetUpdate
		require.NoError(t, DecodeJSON([]byte(`{"size": 3, "name": "w"}`), &req))
		require.Equal(t, sqlhelper.Fields{{Key: "name", Value: "w"}, {Key: "size", Value: 3}}, Payload(&req))
	})

	t.Run("empty body yields no fields", func(t *testing.T) {
		var req widgetUpdate
		require.NoError(t, DecodeJSON(nil, &req))
		require.Empty(t, Payload(&req))
	})

	t.Run("unknown field", func(t *testing.T) {
		var req widgetUpdate
		err := DecodeJSON([]byte(`{"color": "red"}`), &req)
		require.True(t, httperrors.IsBadRequest(err))
		require.Equal(t, "Unknown field: color", err.Error())
	})

	t.Run("wrong type", func(t *testing.T) {
		var req widgetUpdate
		err := DecodeJSON([]byte(`{"size": "big"}`), &req)
		require.True(t, httperrors.IsBadRequest(err))
		require.Equal(t, "size must be of type integer", err.Error())
	})

	t.Run("validation failures are listed", func(t *testing.T) {
		var req widgetUpdate
		err := DecodeJSON([]byte(`{"size": -1, "equity": "1.5"}`), &req)
		require.True(t, httperrors.IsBadRequest(err))
		require.Contains(t, err.Error(), "size must be greater than or equal to 0")
		require.Contains(t, err.Error(), "equity must be a number between 0 and 1")
	})

	t.Run("trailing data", func(t *testing.T) {
		var req widgetUpdate
		err := DecodeJSON([]byte(`{"name": "a"} {}`), &req)
		require.True(t, httperrors.IsBadRequest(err))
	})
}

func TestDecodeQuery(t *testing.T) {
	t.Run("criteria follow query order", func(t *testing.T) {
		var s widgetSearch
		got, err := DecodeQuery([]QueryArg{{"minSize", "2"}, {"name", "net"}}, &s)
		require.NoError(t, err)
		require.Equal(t, sqlhelper.Fields{{Key: "minSize", Value: 2}, {Key: "name", Value: "net"}}, got)
	})

	t.Run("booleans are typed", func(t *testing.T) {
		var s widgetSearch
		got, err := DecodeQuery([]QueryArg{{"shiny", "false"}}, &s)
		require.NoError(t, err)
		require.Equal(t, sqlhelper.Fields{{Key: "shiny", Value: false}}, got)
	})

	t.Run("unknown keys pass through", func(t *testing.T) {
		var s widgetSearch
		got, err := DecodeQuery([]QueryArg{{"name", "a"}, {"color", "red"}}, &s)
		require.NoError(t, err)
		require.Equal(t, sqlhelper.Fields{{Key: "name", Value: "a"}, {Key: "color", Value: "red"}}, got)
	})

	t.Run("conversion error", func(t *testing.T) {
		var s widgetSearch
		_, err := DecodeQuery([]QueryArg{{"minSize", "ten"}}, &s)
		require.True(t, httperrors.IsBadRequest(err))
		require.Equal(t, "minSize must be of type integer", err.Error())
	})

	t.Run("struct validation", func(t *testing.T) {
		var s widgetSearch
		_, err := DecodeQuery([]QueryArg{{"minSize", "-4"}}, &s)
		require.True(t, httperrors.IsBadRequest(err))
		require.Equal(t, "minSize must be greater than or equal to 0", err.Error())
	})
}
