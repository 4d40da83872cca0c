package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repository.go -destination=../mocks/message_repository_mock.go -package=mocks

type MessageRepository interface {
	CreateMessage(msg *models.Message) error
	FindMessageByID(id uuid.UUID) (*models.Message, error)
	GetConversationMessages(conversationID uuid.UUID) ([]models.Message, error)
	SaveMessage(msg *models.Message) error
	DeleteMessage(id uuid.UUID) error
}

type messageRepo struct {
	DB *gorm.DB
}

func NewMessageRepo(db *GormDB) MessageRepository {
	return &messageRepo{db.DB}
}

func (r *messageRepo) CreateMessage(msg *models.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if err := r.DB.Create(msg).Error; err != nil {
		return errors.Wrap(err, "could not create message")
	}
	// reload the author for the response
	return r.DB.Preload("User").First(msg, "id = ?", msg.ID).Error
}

func (r *messageRepo) FindMessageByID(id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := r.DB.Preload("User").First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetConversationMessages returns every message in the conversation in
// ascending creation order, ties broken by id.
func (r *messageRepo) GetConversationMessages(conversationID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.Preload("User").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not load messages")
	}
	return messages, nil
}

func (r *messageRepo) SaveMessage(msg *models.Message) error {
	return r.DB.Save(msg).Error
}

func (r *messageRepo) DeleteMessage(id uuid.UUID) error {
	return r.DB.Delete(&models.Message{}, "id = ?", id).Error
}
