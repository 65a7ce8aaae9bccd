package query

import (
	"net/http"
	"strings"
)

// Sort is a parsed, whitelisted sort selection for a list endpoint.
type Sort struct {
	// Column is the SQL column to order by (already mapped from the API field name).
	Column string
	// Direction is "DESC" or "ASC".
	Direction string
}

// SortFromRequest parses "sortField" and "sortOrder" query parameters.
//
// allowed maps API field names (e.g. "createdAt") to SQL column names; a field
// outside the whitelist silently falls back to defaultField. Order defaults to
// descending, matching list endpoints that show the newest entries first.
func SortFromRequest(r *http.Request, allowed map[string]string, defaultField string) Sort {
	field := r.URL.Query().Get("sortField")
	column, ok := allowed[field]
	if !ok {
		column = allowed[defaultField]
	}

	direction := "DESC"
	if strings.EqualFold(r.URL.Query().Get("sortOrder"), "asc") {
		direction = "ASC"
	}

	return Sort{Column: column, Direction: direction}
}
