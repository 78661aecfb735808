// Package data provides the data models and database interaction logic
// for the hubs API. Each model type wraps the shared *sql.DB pool and
// owns all queries against one table.
package data

import (
	"database/sql"
	"errors"
	"strings"
)

// Models is a top-level container that groups all database model types together.
// It is passed around the application via applicationDependencies so every handler
// has access to the database without importing sql directly.
type Models struct {
	Hubs     HubModel     // Handles all database operations for the hubs table
	Messages MessageModel // Handles all database operations for the messages table
	Adopters AdopterModel // Handles all database operations for the adopters table
	Dogs     DogModel     // Handles all database operations for the dogs table
}

// NewModels constructs a Models value wired up to the given database connection pool.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(db *sql.DB) Models {
	return Models{
		Hubs:     HubModel{DB: db},
		Messages: MessageModel{DB: db},
		Adopters: AdopterModel{DB: db},
		Dogs:     DogModel{DB: db},
	}
}

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// Filters holds pagination and sorting parameters extracted from URL query strings.
type Filters struct {
	Page         int      // Current page number (1-indexed)
	PageSize     int      // Number of records per page
	Sort         string   // Column name to sort by (prefix with "-" for DESC)
	SortSafeList []string // Allowed sort columns to prevent SQL injection
}

// sortColumn returns the validated column name for ORDER BY, defaulting to hub_id.
func (f Filters) sortColumn() string {
	for _, safe := range f.SortSafeList {
		if f.Sort == safe {
			return strings.TrimPrefix(f.Sort, "-")
		}
	}
	return "hub_id" // safe fallback
}

// sortDirection returns "ASC" or "DESC" based on the Sort prefix.
func (f Filters) sortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}
	return "ASC"
}

// limit returns the SQL LIMIT value derived from PageSize.
func (f Filters) limit() int { return f.PageSize }

// offset returns the SQL OFFSET value derived from Page and PageSize.
func (f Filters) offset() int { return (f.Page - 1) * f.PageSize }
