package models

import (
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

// JobSearchFilters translates job search criteria into a WHERE condition.
// Criteria are type checked by JobSearchQuery before they get here.
// hasEquity only filters when it is true.
var JobSearchFilters = sqlhelper.NewFilterSet("job", nil,
	sqlhelper.Filter{Key: "title", Predicate: "title ILIKE '%' || $? || '%'"},
	sqlhelper.Filter{Key: "minSalary", Predicate: "salary >= $?"},
	sqlhelper.Filter{Key: "hasEquity", Predicate: "equity > 0", Transform: sqlhelper.OnlyTrue},
)
