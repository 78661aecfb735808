package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// Hub represents a single hub record stored in the database.
// A hub is the parent resource: every message belongs to exactly one hub.
type Hub struct {
	ID        int64     `json:"hub_id"`     // Unique identifier assigned by the database
	Name      string    `json:"name"`       // Display name of the hub
	CreatedAt time.Time `json:"created_at"` // Timestamp when the record was created
	UpdatedAt time.Time `json:"updated_at"` // Timestamp when the record was last modified
}

// CreateHubInput holds the fields a client must supply when creating a new hub.
type CreateHubInput struct {
	Name string `json:"name"`
}

// UpdateHubInput holds the fields a client may supply when partially updating a hub.
// Every field is a pointer so we can distinguish between "not provided" (nil)
// and "intentionally set to zero/empty". Only non-nil fields are applied.
type UpdateHubInput struct {
	Name *string `json:"name"`
}

// ValidateHub checks the business rules for a hub and records any failures in v.
// It runs before any database call so malformed input never reaches the store.
func ValidateHub(v *validator.Validator, hub *Hub) {
	v.Check(hub.Name != "", "name", "must be provided")
	v.Check(len(hub.Name) <= 100, "name", "must not be more than 100 characters long")
}

// HubModel wraps a *sql.DB connection and provides methods for
// creating, reading, updating, and deleting hub records.
type HubModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new hub record to the database.
// After a successful insert, the database-assigned hub_id, created_at, and
// updated_at values are written back into the hub struct.
func (m HubModel) Insert(hub *Hub) error {
	query := `
        INSERT INTO hubs (name)
        VALUES ($1)
        RETURNING hub_id, created_at, updated_at`

	// Run the INSERT and scan the auto-generated columns back into the struct.
	return m.DB.QueryRow(query, hub.Name).Scan(&hub.ID, &hub.CreatedAt, &hub.UpdatedAt)
}

// Get retrieves a single hub by its primary key.
// Returns ErrRecordNotFound if no hub with the given id exists.
func (m HubModel) Get(id int64) (*Hub, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT hub_id, name, created_at, updated_at
		FROM hubs
		WHERE hub_id = $1`

	var hub Hub
	err := m.DB.QueryRow(query, id).Scan(
		&hub.ID,
		&hub.Name,
		&hub.CreatedAt,
		&hub.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &hub, nil
}

// GetAll retrieves a sorted, paginated list of hubs, optionally filtered by
// name. An empty name matches every hub; otherwise the match is a
// case-insensitive substring match.
func (m HubModel) GetAll(name string, filters Filters) ([]*Hub, error) {
	// Build query dynamically using the validated sort column and direction.
	query := fmt.Sprintf(`
		SELECT hub_id, name, created_at, updated_at
		FROM hubs
		WHERE ($1 = '' OR name ILIKE '%%' || $1 || '%%')
		ORDER BY %s %s, hub_id ASC
		LIMIT $2 OFFSET $3`, filters.sortColumn(), filters.sortDirection())

	// Execute the SELECT and get a result set (rows).
	rows, err := m.DB.Query(query, name, filters.limit(), filters.offset())
	if err != nil {
		return nil, err
	}
	// Always close the result set when we are done to free the database connection.
	defer rows.Close()

	hubs := []*Hub{}

	// Iterate over each row and scan the columns into a Hub struct.
	for rows.Next() {
		var hub Hub
		err := rows.Scan(
			&hub.ID,
			&hub.Name,
			&hub.CreatedAt,
			&hub.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		hubs = append(hubs, &hub)
	}

	// Check for any error that occurred while iterating the rows.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hubs, nil
}

// Update saves the modified fields of hub back to the database.
// The WHERE clause matches on hub.ID, and the database automatically
// updates the updated_at timestamp, which is scanned back into the struct.
func (m HubModel) Update(hub *Hub) error {
	query := `
		UPDATE hubs
		SET name = $1, updated_at = CURRENT_TIMESTAMP
		WHERE hub_id = $2
		RETURNING updated_at`

	err := m.DB.QueryRow(query, hub.Name, hub.ID).Scan(&hub.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// Delete removes the hub with the given id from the database.
// Returns ErrRecordNotFound if no matching record exists.
func (m HubModel) Delete(id int64) error {
	// Guard against obviously bad IDs before touching the database.
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `DELETE FROM hubs WHERE hub_id = $1`

	// Exec returns a Result that tells us how many rows were affected.
	result, err := m.DB.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// If no rows were deleted, the hub didn't exist.
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
