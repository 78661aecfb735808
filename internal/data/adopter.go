package data

import (
	"database/sql"
	"errors"
	"time"
)

// Adopter represents a person who can adopt dogs. It is the parent resource
// of the adopter/dog pair, mirroring the hub/message relationship.
//
// There are no Insert/Update/Delete methods here: the corresponding API
// endpoints are declared placeholders that never reach the database.
type Adopter struct {
	ID        int64     `json:"adopter_id"` // Unique identifier assigned by the database
	Name      string    `json:"name"`       // Full name of the adopter
	Email     string    `json:"email"`      // Contact email address
	CreatedAt time.Time `json:"created_at"` // Timestamp when the record was created
	UpdatedAt time.Time `json:"updated_at"` // Timestamp when the record was last modified
}

// AdopterModel wraps a *sql.DB connection and provides read access to
// adopter records.
type AdopterModel struct {
	DB *sql.DB // Shared database connection pool
}

// Get retrieves a single adopter by its primary key.
// Returns ErrRecordNotFound if no adopter with the given id exists.
func (m AdopterModel) Get(id int64) (*Adopter, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT adopter_id, name, email, created_at, updated_at
		FROM adopters
		WHERE adopter_id = $1`

	var adopter Adopter
	err := m.DB.QueryRow(query, id).Scan(
		&adopter.ID,
		&adopter.Name,
		&adopter.Email,
		&adopter.CreatedAt,
		&adopter.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &adopter, nil
}

// GetAll retrieves every adopter, ordered by id.
func (m AdopterModel) GetAll() ([]*Adopter, error) {
	query := `
		SELECT adopter_id, name, email, created_at, updated_at
		FROM adopters
		ORDER BY adopter_id ASC`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adopters := []*Adopter{}

	for rows.Next() {
		var adopter Adopter
		err := rows.Scan(
			&adopter.ID,
			&adopter.Name,
			&adopter.Email,
			&adopter.CreatedAt,
			&adopter.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		adopters = append(adopters, &adopter)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adopters, nil
}
