package services

import (
	"taxOffice/internal/models"
	"taxOffice/internal/repositories"
	"taxOffice/internal/validators"
)

type MessageService struct {
	messageRepo *repositories.MessageRepository
}

func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
	}
}

func (ms *MessageService) SendMessage(senderId uint, body *models.SendMessageRequestBody) (*models.Message, []error) {
	validationErrs := validators.ValidateSendMessage(body)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}
	message := &models.Message{
		SenderID:    senderId,
		RecipientID: body.RecipientID,
		Content:     body.Content,
	}
	return ms.messageRepo.CreateMessage(message)
}

func (ms *MessageService) GetConversation(userId, otherUserId uint) ([]models.Message, []error) {
	messages, errors := ms.messageRepo.GetConversation(userId, otherUserId)
	if len(errors) > 0 {
		return nil, errors
	}
	// Reading a conversation marks the other side's messages as read.
	_ = ms.messageRepo.MarkConversationRead(userId, otherUserId)
	return messages, nil
}
