package models

import (
	"time"

	"gorm.io/gorm"
)

type MessageThread struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	InitiatorID   uint      `json:"initiator_id" gorm:"index"`
	ReceiverID    uint      `json:"receiver_id" gorm:"index"`
	BookingID     *uint     `json:"booking_id"`
	LastMessageAt time.Time `json:"last_message_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *MessageThread) BeforeCreate(tx *gorm.DB) error {
	if t.LastMessageAt.IsZero() {
		t.LastMessageAt = time.Now().UTC()
	}
	return nil
}

// HasParticipant reports whether the given user is one of the two sides of
// the thread.
func (t *MessageThread) HasParticipant(userID uint) bool {
	return t.InitiatorID == userID || t.ReceiverID == userID
}

type Message struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ThreadID    uint       `json:"thread_id" gorm:"index"`
	SenderID    uint       `json:"sender_id"`
	Content     string     `json:"content"`
	MessageType string     `json:"message_type" gorm:"default:'TEXT'"`
	SentAt      time.Time  `json:"sent_at"`
	ReadAt      *time.Time `json:"read_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.SentAt.IsZero() {
		m.SentAt = time.Now().UTC()
	}
	return nil
}
