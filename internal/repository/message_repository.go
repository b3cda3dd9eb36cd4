package repository

import (
	"context"
	"database/sql"

	"github.com/jockyhq/booking-api/internal/model"
)

// MessageRepo provides operations on user-to-user messages.
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo returns a new MessageRepo bound to the given database.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

const messageCols = "id, sender_id, receiver_id, booking_id, message_text, is_read, created_at"

func scanMessage(row interface{ Scan(...any) error }, m *model.Message) error {
	return row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.BookingID,
		&m.MessageText, &m.IsRead, &m.CreatedAt)
}

// Create inserts a message and returns the stored row.
func (r *MessageRepo) Create(ctx context.Context, senderID, receiverID uint64, bookingID *uint64, text string) (model.Message, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (sender_id, receiver_id, booking_id, message_text) VALUES (?,?,?,?)",
		senderID, receiverID, bookingID, text)
	if err != nil {
		return model.Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Message{}, err
	}
	var m model.Message
	err = scanMessage(r.db.QueryRowContext(ctx,
		"SELECT "+messageCols+" FROM messages WHERE id=?", uint64(id)), &m)
	return m, err
}

// ListForUser returns messages the user sent or received, newest first.
// withUser narrows the listing to the conversation with one peer;
// unreadOnly keeps only unread messages addressed to the user.
func (r *MessageRepo) ListForUser(ctx context.Context, userID uint64, withUser uint64, unreadOnly bool) ([]model.Message, error) {
	q := "SELECT " + messageCols + " FROM messages WHERE (sender_id = ? OR receiver_id = ?)"
	args := []any{userID, userID}
	if withUser != 0 {
		q += " AND (sender_id = ? OR receiver_id = ?)"
		args = append(args, withUser, withUser)
	}
	if unreadOnly {
		q += " AND receiver_id = ? AND is_read = FALSE"
		args = append(args, userID)
	}
	q += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flips is_read on a message.  Only the receiver may do so:
// when the row exists but belongs to another receiver, ErrForbidden is
// returned; when it does not exist at all, sql.ErrNoRows.
func (r *MessageRepo) MarkRead(ctx context.Context, messageID, readerID uint64) (model.Message, error) {
	var receiverID uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT receiver_id FROM messages WHERE id=?", messageID).Scan(&receiverID)
	if err != nil {
		return model.Message{}, err
	}
	if receiverID != readerID {
		return model.Message{}, ErrForbidden
	}
	if _, err := r.db.ExecContext(ctx,
		"UPDATE messages SET is_read = TRUE WHERE id = ?", messageID); err != nil {
		return model.Message{}, err
	}
	var m model.Message
	err = scanMessage(r.db.QueryRowContext(ctx,
		"SELECT "+messageCols+" FROM messages WHERE id=?", messageID), &m)
	return m, err
}
