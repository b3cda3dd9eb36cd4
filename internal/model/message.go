package model

import "time"

// Message is a free-text note between two users, optionally scoped to a
// booking.  Sender and receiver must be distinct existing users.
//
// Fields:
//  ID          – primary key identifier.
//  SenderID    – user who wrote the message.
//  ReceiverID  – user the message is addressed to.
//  BookingID   – optional booking the conversation concerns.
//  MessageText – the message body.
//  IsRead      – flipped once when the receiver marks it read.
//  CreatedAt   – creation timestamp.
type Message struct {
	ID          uint64    `json:"id"`
	SenderID    uint64    `json:"sender_id"`
	ReceiverID  uint64    `json:"receiver_id"`
	BookingID   *uint64   `json:"booking_id"`
	MessageText string    `json:"message_text"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
