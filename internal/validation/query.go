package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("schema")
	return d
}

// QueryArg is one key/value pair of a query string.
type QueryArg struct {
	Key   string
	Value string
}

// QueryArgs returns the query string of c in the order the client sent it.
func QueryArgs(c *fiber.Ctx) []QueryArg {
	var args []QueryArg
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		args = append(args, QueryArg{Key: string(key), Value: string(value)})
	})
	return args
}

// DecodeQuery decodes args into the struct dst points to and validates it.
// The returned criteria follow the order of args. Keys dst does not declare
// are passed through with their raw value so the filter table can reject
// them, repeated keys are passed through repeatedly.
func DecodeQuery(args []QueryArg, dst interface{}) (sqlhelper.Fields, error) {
	values := make(map[string][]string, len(args))
	order := make([]string, 0, len(args))
	for _, a := range args {
		values[a.Key] = append(values[a.Key], a.Value)
		order = append(order, a.Key)
	}

	if err := queryDecoder.Decode(dst, values); err != nil {
		return nil, httperrors.NewBadRequest(schemaMessages(err)...)
	}
	if err := Struct(dst); err != nil {
		return nil, err
	}

	known := make(map[string]interface{})
	for _, f := range collect(dst, "schema", nil) {
		known[f.Key] = f.Value
	}
	declared := make(map[string]bool)
	for _, name := range tagNames(dst, "schema") {
		declared[name] = true
	}

	criteria := make(sqlhelper.Fields, 0, len(args))
	for i, key := range order {
		if !declared[key] {
			criteria = append(criteria, sqlhelper.Field{Key: key, Value: args[i].Value})
			continue
		}
		if v, ok := known[key]; ok {
			criteria = append(criteria, sqlhelper.Field{Key: key, Value: v})
		}
	}
	return criteria, nil
}

func schemaMessages(err error) []string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return []string{err.Error()}
	}

	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		var convErr schema.ConversionError
		if errors.As(multi[k], &convErr) && convErr.Type != nil {
			messages = append(messages, fmt.Sprintf("%s must be of type %s", k, typeName(convErr.Type)))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: %v", k, multi[k]))
	}
	return messages
}

func tagNames(src interface{}, tag string) []string {
	t := reflect.Indirect(reflect.ValueOf(src)).Type()
	var names []string
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}
