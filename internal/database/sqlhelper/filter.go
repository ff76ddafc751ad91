package sqlhelper

import (
	"fmt"
	"math"
	"strings"

	"github.com/AnyaAven/jobly/internal/httperrors"
)

// NextParam marks where a predicate template binds the next positional parameter.
const NextParam = "$?"

// TransformFunc converts a raw criteria value into the bound parameter.
// Returning keep=false drops the criterion: it emits no fragment, binds no
// value and consumes no placeholder.
type TransformFunc func(value interface{}) (out interface{}, keep bool, err error)

// Filter maps one search key to a predicate template.
// A template without NextParam binds nothing.
type Filter struct {
	Key       string
	Predicate string
	Transform TransformFunc
}

// ValidateFunc checks the converted criteria as a whole and returns one
// message per violated constraint.
type ValidateFunc func(criteria Fields) []string

// FilterSet is the ordered filter table of one resource.
type FilterSet struct {
	resource string
	filters  []Filter
	index    map[string]int
	validate ValidateFunc
}

// NewFilterSet builds a filter table. Duplicate keys panic, filter tables are
// package level values.
func NewFilterSet(resource string, validate ValidateFunc, filters ...Filter) *FilterSet {
	index := make(map[string]int, len(filters))
	for i, f := range filters {
		if _, exists := index[f.Key]; exists {
			panic(fmt.Sprintf("sqlhelper: duplicate filter %q for %s", f.Key, resource))
		}
		index[f.Key] = i
	}
	return &FilterSet{
		resource: resource,
		filters:  filters,
		index:    index,
		validate: validate,
	}
}

// Keys returns the recognized search keys in table order.
func (s *FilterSet) Keys() []string {
	keys := make([]string, len(s.filters))
	for i, f := range s.filters {
		keys[i] = f.Key
	}
	return keys
}

// Where builds the WHERE condition for criteria. Fragments are joined with
// AND in criteria order and Values follow the same order.
//
// A criterion whose value is nil counts as absent. Criteria that are all
// dropped by their transform yield the condition TRUE with no values.
func (s *FilterSet) Where(criteria Fields) (Clause, error) {
	var unknown []string
	present := 0
	for _, c := range criteria {
		if _, ok := s.index[c.Key]; !ok {
			unknown = append(unknown, c.Key)
			continue
		}
		if c.Value != nil {
			present++
		}
	}
	if len(unknown) > 0 {
		return Clause{}, httperrors.NewBadRequest(fmt.Sprintf(
			"Unknown %s search parameter(s): %s. Allowed: %s",
			s.resource, strings.Join(unknown, ", "), strings.Join(s.Keys(), ", ")))
	}
	if present == 0 {
		return Clause{}, httperrors.NewBadRequest("No search parameters supplied")
	}
	if key, dup := criteria.firstDuplicate(); dup {
		return Clause{}, httperrors.NewBadRequest("Duplicate search parameter: " + key)
	}

	converted := make(Fields, 0, present)
	kept := make([]bool, 0, present)
	var problems []string
	for _, c := range criteria {
		if c.Value == nil {
			continue
		}
		f := s.filters[s.index[c.Key]]
		value, keep := c.Value, true
		if f.Transform != nil {
			var err error
			value, keep, err = f.Transform(c.Value)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s %s", c.Key, err.Error()))
				continue
			}
		}
		converted = append(converted, Field{Key: c.Key, Value: value})
		kept = append(kept, keep)
	}
	if len(problems) > 0 {
		return Clause{}, httperrors.NewBadRequest(problems...)
	}
	if s.validate != nil {
		if msgs := s.validate(converted); len(msgs) > 0 {
			return Clause{}, httperrors.NewBadRequest(msgs...)
		}
	}

	fragments := make([]string, 0, len(converted))
	values := make([]interface{}, 0, len(converted))
	for i, c := range converted {
		if !kept[i] {
			continue
		}
		predicate := s.filters[s.index[c.Key]].Predicate
		if strings.Contains(predicate, NextParam) {
			values = append(values, c.Value)
			predicate = strings.Replace(predicate, NextParam, Placeholder(len(values)), 1)
		}
		fragments = append(fragments, predicate)
	}
	if len(fragments) == 0 {
		return Clause{SQL: "TRUE", Values: values}, nil
	}

	return Clause{
		SQL:    strings.Join(fragments, " AND "),
		Values: values,
	}, nil
}

// String accepts string values only.
func String(value interface{}) (interface{}, bool, error) {
	s, ok := value.(string)
	if !ok {
		return nil, false, fmt.Errorf("must be a string")
	}
	return s, true, nil
}

// Integer accepts any integral number and normalizes it to int.
func Integer(value interface{}) (interface{}, bool, error) {
	n, ok := ToInt(value)
	if !ok {
		return nil, false, fmt.Errorf("must be an integer")
	}
	return n, true, nil
}

// OnlyTrue keeps the criterion only when the value is exactly boolean true.
func OnlyTrue(value interface{}) (interface{}, bool, error) {
	b, ok := value.(bool)
	return true, ok && b, nil
}

// ToInt converts integral numeric values to int. Values outside the int
// range are rejected.
func ToInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint:
		return uintToInt(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return uintToInt(uint64(v))
	case uint64:
		return uintToInt(v)
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	default:
		return 0, false
	}
}

func uintToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// minIntFloat is exactly representable; MaxInt is not, so the upper bound is
// checked as f >= -minIntFloat.
const minIntFloat = float64(math.MinInt)

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < minIntFloat || f >= -minIntFloat {
		return 0, false
	}
	return int(f), true
}
