package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=conversation_repository.go -destination=../mocks/conversation_repository_mock.go -package=mocks

type ConversationRepository interface {
	CreateConversation(conv *models.Conversation, creatorID uint, memberIDs []uint) error
	FindConversationByID(id uuid.UUID) (*models.Conversation, error)
	GetConversationsForUser(userID uint) ([]models.Conversation, error)
	GetMembership(conversationID uuid.UUID, userID uint) (*models.ConversationMembership, error)
	UpdateConversation(conv *models.Conversation) error
	DeleteConversation(id uuid.UUID) error
	GetLatestMessage(conversationID uuid.UUID) (*models.Message, error)
	CountUsers(ids []uint) (int64, error)
}

type conversationRepo struct {
	DB *gorm.DB
}

func NewConversationRepo(db *GormDB) ConversationRepository {
	return &conversationRepo{db.DB}
}

// CreateConversation creates the conversation and attaches the creator as
// admin plus every listed user as member, all in one transaction so a bad
// member id leaves no orphaned conversation behind. A duplicate
// (conversation, user) pair surfaces as gorm.ErrDuplicatedKey.
func (r *conversationRepo) CreateConversation(conv *models.Conversation, creatorID uint, memberIDs []uint) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}
	now := time.Now()

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}

		memberships := []models.ConversationMembership{{
			ConversationID: conv.ID,
			UserID:         creatorID,
			Role:           models.RoleAdmin,
			JoinedAt:       now,
		}}
		for _, userID := range memberIDs {
			memberships = append(memberships, models.ConversationMembership{
				ConversationID: conv.ID,
				UserID:         userID,
				Role:           models.RoleMember,
				JoinedAt:       now,
			})
		}
		return tx.Create(&memberships).Error
	})
}

func (r *conversationRepo) FindConversationByID(id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.DB.Preload("Memberships.User").First(&conv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) GetConversationsForUser(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.DB.
		Joins("JOIN conversation_memberships ON conversation_memberships.conversation_id = conversations.id").
		Where("conversation_memberships.user_id = ?", userID).
		Preload("Memberships.User").
		Find(&conversations).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not list conversations")
	}
	return conversations, nil
}

func (r *conversationRepo) GetMembership(conversationID uuid.UUID, userID uint) (*models.ConversationMembership, error) {
	var membership models.ConversationMembership
	err := r.DB.
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *conversationRepo) UpdateConversation(conv *models.Conversation) error {
	return r.DB.Model(&models.Conversation{}).
		Where("id = ?", conv.ID).
		Updates(map[string]interface{}{
			"name":        conv.Name,
			"description": conv.Description,
			"image":       conv.Image,
		}).Error
}

// DeleteConversation removes the row; memberships and messages go with it
// through the ON DELETE CASCADE constraints.
func (r *conversationRepo) DeleteConversation(id uuid.UUID) error {
	return r.DB.Delete(&models.Conversation{}, "id = ?", id).Error
}

func (r *conversationRepo) GetLatestMessage(conversationID uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := r.DB.Preload("User").
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *conversationRepo) CountUsers(ids []uint) (int64, error) {
	var count int64
	if err := r.DB.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "could not count users")
	}
	return count, nil
}
