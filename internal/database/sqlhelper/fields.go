// Package sqlhelper assembles SET and WHERE clause fragments with positional
// ($N) parameters from caller-supplied, insertion-ordered payloads.
package sqlhelper

import (
	"strconv"
)

// Field is one key/value pair of an ordered payload.
type Field struct {
	Key   string
	Value interface{}
}

// Fields is an insertion-ordered mapping from logical field names to values.
type Fields []Field

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Key
	}
	return keys
}

// Values returns the values in insertion order.
func (f Fields) Values() []interface{} {
	values := make([]interface{}, len(f))
	for i, field := range f {
		values[i] = field.Value
	}
	return values
}

// Lookup returns the value stored under key.
func (f Fields) Lookup(key string) (interface{}, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// With returns a copy of f with key set to value. An existing key keeps its position.
func (f Fields) With(key string, value interface{}) Fields {
	out := make(Fields, len(f), len(f)+1)
	copy(out, f)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Key: key, Value: value})
}

func (f Fields) firstDuplicate() (string, bool) {
	seen := make(map[string]struct{}, len(f))
	for _, field := range f {
		if _, ok := seen[field.Key]; ok {
			return field.Key, true
		}
		seen[field.Key] = struct{}{}
	}
	return "", false
}

// Clause is an SQL fragment and the values bound to its placeholders.
// Placeholder $i pairs with Values[i-1].
type Clause struct {
	SQL    string
	Values []interface{}
}

// NextPlaceholder returns the first placeholder index not used by the clause.
func (c Clause) NextPlaceholder() string {
	return Placeholder(len(c.Values) + 1)
}

// Args returns the clause values followed by extra trailing parameters.
func (c Clause) Args(extra ...interface{}) []interface{} {
	args := make([]interface{}, 0, len(c.Values)+len(extra))
	args = append(args, c.Values...)
	return append(args, extra...)
}

// Placeholder renders the 1-indexed positional parameter n.
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
