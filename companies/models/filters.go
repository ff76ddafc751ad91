package models

import (
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

// UpdateColumns maps request field names to company columns. Fields not
// listed share their column name.
var UpdateColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// CompanySearchFilters translates company search criteria into a WHERE condition.
var CompanySearchFilters = sqlhelper.NewFilterSet("company", validateEmployeeRange,
	sqlhelper.Filter{Key: "nameLike", Predicate: "name ILIKE '%' || $? || '%'", Transform: sqlhelper.String},
	sqlhelper.Filter{Key: "minEmployees", Predicate: "num_employees >= $?", Transform: sqlhelper.Integer},
	sqlhelper.Filter{Key: "maxEmployees", Predicate: "num_employees <= $?", Transform: sqlhelper.Integer},
)

func validateEmployeeRange(criteria sqlhelper.Fields) []string {
	minEmployees, hasMin := employeeBound(criteria, "minEmployees")
	maxEmployees, hasMax := employeeBound(criteria, "maxEmployees")

	var messages []string
	if (hasMin && minEmployees < 0) || (hasMax && maxEmployees < 0) {
		messages = append(messages, "min and max employees must be 0 or greater")
	}
	if hasMin && hasMax && minEmployees > maxEmployees {
		messages = append(messages, "minEmployees must be less than maxEmployees")
	}
	return messages
}

func employeeBound(criteria sqlhelper.Fields, key string) (int, bool) {
	v, ok := criteria.Lookup(key)
	if !ok {
		return 0, false
	}
	return sqlhelper.ToInt(v)
}
