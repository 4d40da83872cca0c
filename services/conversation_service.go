package services

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/db"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=conversation_service.go -destination=../mocks/conversation_service_mock.go -package=mocks

// ConversationService interface
type ConversationService interface {
	ListConversations(userID uint) ([]models.ConversationSummary, *apiError.Error)
	CreateConversation(userID uint, request *models.CreateConversationRequest) (*models.Conversation, *apiError.Error)
	ShowConversation(userID uint, conversationID uuid.UUID) (*models.ConversationDetail, *apiError.Error)
	UpdateConversation(userID uint, conversationID uuid.UUID, request *models.UpdateConversationRequest, imageFile *multipart.FileHeader) (*models.Conversation, *apiError.Error)
	DeleteConversation(userID uint, conversationID uuid.UUID) *apiError.Error
}

type conversationService struct {
	membershipChecker
	Config       *config.Config
	convRepo     db.ConversationRepository
	messageRepo  db.MessageRepository
	mediaService MediaService
}

// NewConversationService instantiates a ConversationService
func NewConversationService(convRepo db.ConversationRepository, messageRepo db.MessageRepository, mediaService MediaService, conf *config.Config) ConversationService {
	return &conversationService{
		membershipChecker: membershipChecker{convRepo: convRepo},
		Config:            conf,
		convRepo:          convRepo,
		messageRepo:       messageRepo,
		mediaService:      mediaService,
	}
}

const (
	fallbackGroupName  = "Group Chat"
	fallbackMemberName = "Unknown User"
	defaultUnreadCount = 0 // read tracking not implemented
)

// displayName resolves the name a viewer sees for a conversation: the stored
// name when present, the other member's name for private chats, and the
// literal fallbacks when neither resolves.
func displayName(conv *models.Conversation, viewerID uint) string {
	if conv.Name != nil && *conv.Name != "" {
		return *conv.Name
	}
	if conv.Type != models.ConversationTypePrivate {
		return fallbackGroupName
	}
	for _, membership := range conv.Memberships {
		if membership.UserID != viewerID && membership.User.Fullname != "" {
			return membership.User.Fullname
		}
	}
	return fallbackMemberName
}

func memberSummaries(conv *models.Conversation) []models.MemberSummary {
	return lo.Map(conv.Memberships, func(m models.ConversationMembership, _ int) models.MemberSummary {
		return models.MemberSummary{
			ID:       m.UserID,
			Name:     m.User.Fullname,
			Email:    m.User.Email,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	})
}

func (s *conversationService) ListConversations(userID uint) ([]models.ConversationSummary, *apiError.Error) {
	conversations, err := s.convRepo.GetConversationsForUser(userID)
	if err != nil {
		log.Printf("ListConversations error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	summaries := make([]models.ConversationSummary, 0, len(conversations))
	for i := range conversations {
		conv := &conversations[i]

		var preview *models.LatestMessagePreview
		latest, err := s.convRepo.GetLatestMessage(conv.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("ListConversations error loading latest message: %v", err)
			return nil, apiError.ErrInternalServerError
		}
		if latest != nil {
			preview = &models.LatestMessagePreview{
				Content:   latest.Content,
				Type:      latest.Type,
				CreatedAt: latest.CreatedAt,
				UserName:  latest.User.Fullname,
			}
		}

		summaries = append(summaries, models.ConversationSummary{
			ID:            conv.ID,
			Name:          displayName(conv, userID),
			Type:          conv.Type,
			Image:         conv.Image,
			Members:       memberSummaries(conv),
			LatestMessage: preview,
			UnreadCount:   defaultUnreadCount,
		})
	}
	return summaries, nil
}

// CreateConversation creates the conversation with the creator as admin and
// every listed user as member, atomically. Listing the creator's own id (or
// any id twice) trips the unique membership constraint and is rejected as a
// conflict rather than deduplicated.
func (s *conversationService) CreateConversation(userID uint, request *models.CreateConversationRequest) (*models.Conversation, *apiError.Error) {
	if !models.IsValidConversationType(request.Type) {
		return nil, apiError.FieldError("type", "conversation type must be either private or group")
	}
	if len(request.UserIDs) == 0 {
		return nil, apiError.FieldError("user_ids", "please select at least one user")
	}

	uniqueIDs := lo.Uniq(request.UserIDs)
	count, err := s.convRepo.CountUsers(uniqueIDs)
	if err != nil {
		log.Printf("CreateConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if count != int64(len(uniqueIDs)) {
		return nil, apiError.NotFound("selected user")
	}

	conv := &models.Conversation{
		Name:        request.Name,
		Type:        request.Type,
		Description: request.Description,
	}
	if err := s.convRepo.CreateConversation(conv, userID, request.UserIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apiError.Conflict("user is already a member of this conversation")
		}
		log.Printf("CreateConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return conv, nil
}

func (s *conversationService) ShowConversation(userID uint, conversationID uuid.UUID) (*models.ConversationDetail, *apiError.Error) {
	conv, err := s.convRepo.FindConversationByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.NotFound("conversation")
		}
		log.Printf("ShowConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if apiErr := s.RequireMember(userID, conversationID); apiErr != nil {
		return nil, apiErr
	}

	messages, err := s.messageRepo.GetConversationMessages(conversationID)
	if err != nil {
		log.Printf("ShowConversation error loading messages: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.ConversationDetail{
		ID:          conv.ID,
		Name:        displayName(conv, userID),
		Type:        conv.Type,
		Image:       conv.Image,
		Description: conv.Description,
		Members:     memberSummaries(conv),
		Messages: lo.Map(messages, func(msg models.Message, _ int) models.MessageResponse {
			return newMessageResponse(&msg, userID)
		}),
	}, nil
}

// UpdateConversation mutates name, description and image only; the
// conversation type is immutable after creation.
func (s *conversationService) UpdateConversation(userID uint, conversationID uuid.UUID, request *models.UpdateConversationRequest, imageFile *multipart.FileHeader) (*models.Conversation, *apiError.Error) {
	conv, err := s.convRepo.FindConversationByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.NotFound("conversation")
		}
		log.Printf("UpdateConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if apiErr := s.RequireAdmin(userID, conversationID, "update"); apiErr != nil {
		return nil, apiErr
	}

	if request.Name != nil {
		conv.Name = request.Name
	}
	if request.Description != nil {
		conv.Description = request.Description
	}
	if imageFile != nil {
		path, apiErr := s.mediaService.StoreConversationImage(imageFile)
		if apiErr != nil {
			return nil, apiErr
		}
		conv.Image = &path
	}

	if err := s.convRepo.UpdateConversation(conv); err != nil {
		log.Printf("UpdateConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return conv, nil
}

// DeleteConversation removes the conversation; memberships and messages
// cascade with it at the store level.
func (s *conversationService) DeleteConversation(userID uint, conversationID uuid.UUID) *apiError.Error {
	if _, err := s.convRepo.FindConversationByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.NotFound("conversation")
		}
		log.Printf("DeleteConversation error: %v", err)
		return apiError.ErrInternalServerError
	}

	if apiErr := s.RequireAdmin(userID, conversationID, "delete"); apiErr != nil {
		return apiErr
	}

	if err := s.convRepo.DeleteConversation(conversationID); err != nil {
		log.Printf("DeleteConversation error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
