package sqlhelper

import (
	"strings"

	"github.com/AnyaAven/jobly/internal/httperrors"
)

// PartialUpdate builds the SET list of an UPDATE statement from data.
//
// Each key becomes `"<column>"=$<i+1>` where column is columns[key] when the
// key is translated and the key itself otherwise. Values follow the order of
// data. Callers appending a trailing parameter use Clause.NextPlaceholder.
//
//	PartialUpdate(Fields{{"firstName", "Aliya"}, {"age", 32}}, map[string]string{"firstName": "first_name"})
//	=> `"first_name"=$1, "age"=$2`, ["Aliya", 32]
func PartialUpdate(data Fields, columns map[string]string) (Clause, error) {
	if len(data) == 0 {
		return Clause{}, httperrors.NewBadRequest("No data")
	}
	if key, dup := data.firstDuplicate(); dup {
		return Clause{}, httperrors.NewBadRequest("Duplicate field: " + key)
	}

	cols := make([]string, len(data))
	values := make([]interface{}, len(data))
	for i, field := range data {
		column := field.Key
		if mapped, ok := columns[field.Key]; ok && mapped != "" {
			column = mapped
		}
		cols[i] = `"` + column + `"=` + Placeholder(i+1)
		values[i] = field.Value
	}

	return Clause{
		SQL:    strings.Join(cols, ", "),
		Values: values,
	}, nil
}
