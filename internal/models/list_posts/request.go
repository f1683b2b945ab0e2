package models

// FilterQueryKeys are the query parameters that describe a filter. A request carrying none
// of them falls back to the dashboard's saved filters; page alone does not count.
var FilterQueryKeys = []string{
	"search",
	"category",
	"urgency",
	"status",
	"startDate",
	"endDate",
	"dateRange",
	"sort",
	"view",
}
