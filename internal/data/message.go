package data

import (
	"database/sql"
	"errors"
	"time"

	"github.com/nvasquez-dev/hubs-api/internal/validator"
)

// Message represents a single message posted to a hub.
// Message IDs are globally unique across all hubs, not just within one hub,
// which is why messages are also addressable directly by their own ID
// without going through the parent hub.
type Message struct {
	ID        int64     `json:"message_id"` // Unique identifier assigned by the database
	HubID     int64     `json:"hub_id"`     // ID of the hub this message belongs to
	From      string    `json:"from"`       // Who posted the message (column "sender")
	Text      string    `json:"text"`       // The message body
	CreatedAt time.Time `json:"created_at"` // Timestamp when the record was created
}

// CreateMessageInput holds the fields a client supplies when posting a message
// to a hub. A hub_id in the body is accepted but ignored: the handler always
// overwrites it with the :id from the URL path.
type CreateMessageInput struct {
	HubID int64  `json:"hub_id"`
	From  string `json:"from"`
	Text  string `json:"text"`
}

// ValidateMessage checks the business rules for a message and records any
// failures in v.
func ValidateMessage(v *validator.Validator, message *Message) {
	v.Check(message.From != "", "from", "must be provided")
	v.Check(len(message.From) <= 100, "from", "must not be more than 100 characters long")
	v.Check(message.Text != "", "text", "must be provided")
	v.Check(len(message.Text) <= 500, "text", "must not be more than 500 characters long")
}

// MessageModel wraps a *sql.DB connection and provides methods for reading
// and creating message records.
type MessageModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new message record to the database. The caller is responsible
// for setting HubID before calling; a violated foreign key surfaces as a plain
// error, not ErrRecordNotFound, since the insert itself failed.
func (m MessageModel) Insert(message *Message) error {
	query := `
        INSERT INTO messages (hub_id, sender, text)
        VALUES ($1, $2, $3)
        RETURNING message_id, created_at`

	return m.DB.QueryRow(
		query,
		message.HubID,
		message.From,
		message.Text,
	).Scan(&message.ID, &message.CreatedAt)
}

// Get retrieves a single message by its globally unique primary key.
// Returns ErrRecordNotFound if no message with the given id exists.
func (m MessageModel) Get(id int64) (*Message, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT message_id, hub_id, sender, text, created_at
		FROM messages
		WHERE message_id = $1`

	var message Message
	err := m.DB.QueryRow(query, id).Scan(
		&message.ID,
		&message.HubID,
		&message.From,
		&message.Text,
		&message.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &message, nil
}

// GetAllForHub retrieves every message belonging to the given hub, oldest
// first. A hub with no messages yields an empty slice, not an error; the
// handler decides what an empty collection means.
func (m MessageModel) GetAllForHub(hubID int64) ([]*Message, error) {
	query := `
		SELECT message_id, hub_id, sender, text, created_at
		FROM messages
		WHERE hub_id = $1
		ORDER BY message_id ASC`

	rows, err := m.DB.Query(query, hubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*Message{}

	for rows.Next() {
		var message Message
		err := rows.Scan(
			&message.ID,
			&message.HubID,
			&message.From,
			&message.Text,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
