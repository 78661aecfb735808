package data

import (
	"database/sql"
	"errors"
	"time"

	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// Dog represents a dog registered to an adopter. Like messages, dog IDs are
// globally unique, so dogs are directly addressable without their adopter.
type Dog struct {
	ID        int64     `json:"dog_id"`     // Unique identifier assigned by the database
	AdopterID int64     `json:"adopter_id"` // ID of the adopter this dog belongs to
	Name      string    `json:"name"`       // The dog's name
	Breed     string    `json:"breed"`      // Breed description, free text
	CreatedAt time.Time `json:"created_at"` // Timestamp when the record was created
}

// CreateDogInput holds the fields a client supplies when registering a dog to
// an adopter. An adopter_id in the body is accepted but ignored: the handler
// always overwrites it with the :id from the URL path.
type CreateDogInput struct {
	AdopterID int64  `json:"adopter_id"`
	Name      string `json:"name"`
	Breed     string `json:"breed"`
}

// ValidateDog checks the business rules for a dog and records any failures in v.
func ValidateDog(v *validator.Validator, dog *Dog) {
	v.Check(dog.Name != "", "name", "must be provided")
	v.Check(len(dog.Name) <= 100, "name", "must not be more than 100 characters long")
	v.Check(len(dog.Breed) <= 100, "breed", "must not be more than 100 characters long")
}

// DogModel wraps a *sql.DB connection and provides methods for reading and
// creating dog records.
type DogModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new dog record to the database. The caller sets AdopterID
// before calling.
func (m DogModel) Insert(dog *Dog) error {
	query := `
        INSERT INTO dogs (adopter_id, name, breed)
        VALUES ($1, $2, $3)
        RETURNING dog_id, created_at`

	return m.DB.QueryRow(
		query,
		dog.AdopterID,
		dog.Name,
		dog.Breed,
	).Scan(&dog.ID, &dog.CreatedAt)
}

// Get retrieves a single dog by its globally unique primary key.
// Returns ErrRecordNotFound if no dog with the given id exists.
func (m DogModel) Get(id int64) (*Dog, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT dog_id, adopter_id, name, breed, created_at
		FROM dogs
		WHERE dog_id = $1`

	var dog Dog
	err := m.DB.QueryRow(query, id).Scan(
		&dog.ID,
		&dog.AdopterID,
		&dog.Name,
		&dog.Breed,
		&dog.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &dog, nil
}

// GetAllForAdopter retrieves every dog belonging to the given adopter.
// An adopter with no dogs yields an empty slice, not an error.
func (m DogModel) GetAllForAdopter(adopterID int64) ([]*Dog, error) {
	query := `
		SELECT dog_id, adopter_id, name, breed, created_at
		FROM dogs
		WHERE adopter_id = $1
		ORDER BY dog_id ASC`

	rows, err := m.DB.Query(query, adopterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dogs := []*Dog{}

	for rows.Next() {
		var dog Dog
		err := rows.Scan(
			&dog.ID,
			&dog.AdopterID,
			&dog.Name,
			&dog.Breed,
			&dog.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, &dog)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dogs, nil
}
