package repository

import (
	"context"
	"database/sql"

	"github.com/homequest/homequest-go/internal/model"
)

// MessageRepository handles inquiry message persistence operations.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new inquiry message and sets the generated ID.
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `INSERT INTO messages (message, home_id, realtor_id, buyer_id) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, msg.Body, msg.HomeID, msg.RealtorID, msg.BuyerID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	msg.ID = id
	return nil
}

// ListByHome retrieves all inquiries for a listing with buyer contact
// info, newest first.
func (r *MessageRepository) ListByHome(ctx context.Context, homeID int64) ([]model.MessageResponse, error) {
	query := `SELECT m.id, m.message, m.home_id, m.buyer_id, u.name, u.phone, u.email, m.created_at
		FROM messages m JOIN users u ON u.id = m.buyer_id
		WHERE m.home_id = ? ORDER BY m.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.MessageResponse
	for rows.Next() {
		var m model.MessageResponse
		if err := rows.Scan(
			&m.ID, &m.Message, &m.HomeID, &m.BuyerID,
			&m.BuyerName, &m.BuyerPhone, &m.BuyerEmail, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
