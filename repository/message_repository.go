package repository

import (
	"time"

	"github.com/meinhoongagan/service-marketplace/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// FindThreadByPair looks up a thread by its ordered (initiator, receiver)
// pair. The reverse direction is a distinct thread.
func (r *MessageRepository) FindThreadByPair(initiatorID, receiverID uint) (*models.MessageThread, error) {
	var thread models.MessageThread
	err := r.db.
		Where("initiator_id = ? AND receiver_id = ?", initiatorID, receiverID).
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *MessageRepository) CreateThread(thread *models.MessageThread) error {
	return r.db.Create(thread).Error
}

func (r *MessageRepository) FindThreadByID(id uint) (*models.MessageThread, error) {
	var thread models.MessageThread
	if err := r.db.First(&thread, id).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *MessageRepository) ListThreadsForUser(userID uint) ([]models.MessageThread, error) {
	var threads []models.MessageThread
	err := r.db.
		Where("initiator_id = ? OR receiver_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&threads).Error
	return threads, err
}

// CreateMessage inserts the message and bumps the thread's last-message
// timestamp in one transaction.
func (r *MessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.MessageThread{}).
			Where("id = ?", message.ThreadID).
			Update("last_message_at", time.Now().UTC()).Error
	})
}

func (r *MessageRepository) ListMessages(threadID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("thread_id = ?", threadID).Order("sent_at ASC").Find(&messages).Error
	return messages, err
}
