package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
)

// DecodeJSON strictly decodes body into dst and validates it. Unknown
// properties, wrong types and trailing data are bad requests.
func DecodeJSON(body []byte, dst interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return httperrors.NewBadRequest(jsonMessage(err))
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return httperrors.NewBadRequest("Request body must contain a single JSON object")
	}

	return Struct(dst)
}

func jsonMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "Request body must be a JSON object"
		}
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeName(typeErr.Type))
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "Unknown field: " + strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
	default:
		return "Malformed JSON"
	}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}

// Payload lists the non-nil pointer fields of a request struct as ordered
// fields keyed by their json name, in declaration order. Pointers are
// dereferenced. Fields without a json name are skipped.
func Payload(src interface{}) sqlhelper.Fields {
	return collect(src, "json", nil)
}

// collect walks the pointer fields of the struct src points to. When order
// is non-nil it lists the tag names in the order they should appear; keys in
// order that match no field are skipped.
func collect(src interface{}, tag string, order []string) sqlhelper.Fields {
	v := reflect.Indirect(reflect.ValueOf(src))
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()

	byName := make(map[string]reflect.Value, t.NumField())
	var names []string
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get(tag), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		byName[name] = v.Field(i)
		names = append(names, name)
	}
	if order == nil {
		order = names
	}

	fields := make(sqlhelper.Fields, 0, len(order))
	for _, name := range order {
		fv, ok := byName[name]
		if !ok {
			continue
		}
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		fields = append(fields, sqlhelper.Field{Key: name, Value: fv.Interface()})
	}
	return fields
}
