package repositories

import (
	"taxOffice/internal/models"
	"time"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) CreateMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	result := mr.db.Create(message)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return message, nil
}

// GetConversation returns the messages exchanged between two users,
// oldest first.
func (mr *MessageRepository) GetConversation(userId, otherUserId uint) ([]models.Message, []error) {
	var errors []error
	var messages []models.Message
	result := mr.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userId, otherUserId, otherUserId, userId).
		Order("created_at").
		Find(&messages)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return messages, nil
}

func (mr *MessageRepository) MarkConversationRead(userId, otherUserId uint) error {
	now := time.Now()
	result := mr.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read_at IS NULL", otherUserId, userId).
		Update("read_at", now)
	return result.Error
}
