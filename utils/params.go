package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// AllCategories is the tab label that disables category filtering.
const AllCategories = "All"

type QueryOptions struct {
	Category string
	Search   string
}

// ParseQueryOptions reads ?category= and ?search=. "All" and blank categories mean
// no category filter.
func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	category := strings.TrimSpace(q.Get("category"))
	if strings.EqualFold(category, AllCategories) {
		category = ""
	}

	return QueryOptions{
		Category: category,
		Search:   strings.TrimSpace(q.Get("search")),
	}
}

// IntParam parses an integer query parameter, falling back to def when it is
// missing or malformed, and clamps it to [min, max].
func IntParam(r *http.Request, name string, def, min, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		v = def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
