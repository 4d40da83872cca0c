package services

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/db"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=message_service.go -destination=../mocks/message_service_mock.go -package=mocks

// MessageService interface
type MessageService interface {
	SendMessage(user *models.User, conversationID uuid.UUID, request *models.SendMessageRequest, mediaFile *multipart.FileHeader) (*models.MessageResponse, *apiError.Error)
	UpdateMessage(userID uint, messageID uuid.UUID, content string) (*models.Message, *apiError.Error)
	DeleteMessage(userID uint, messageID uuid.UUID) *apiError.Error
}

type messageService struct {
	membershipChecker
	Config       *config.Config
	messageRepo  db.MessageRepository
	mediaService MediaService
}

// NewMessageService instantiates a MessageService
func NewMessageService(messageRepo db.MessageRepository, convRepo db.ConversationRepository, mediaService MediaService, conf *config.Config) MessageService {
	return &messageService{
		membershipChecker: membershipChecker{convRepo: convRepo},
		Config:            conf,
		messageRepo:       messageRepo,
		mediaService:      mediaService,
	}
}

func newMessageResponse(msg *models.Message, viewerID uint) models.MessageResponse {
	return models.MessageResponse{
		ID:        msg.ID,
		Content:   msg.Content,
		Type:      msg.Type,
		Media:     msg.Media,
		IsEdited:  msg.IsEdited,
		EditedAt:  msg.EditedAt,
		CreatedAt: msg.CreatedAt,
		User: models.MessageAuthor{
			ID:   msg.UserID,
			Name: msg.User.Fullname,
		},
		IsOwn: msg.UserID == viewerID,
	}
}

// validateSend runs every per-field check before any blob write: text needs
// non-blank content, image/video/file types need a file payload within the
// size bound. Sticker and gif require neither.
func validateSend(request *models.SendMessageRequest, mediaFile *multipart.FileHeader) *apiError.Error {
	fields := make(map[string]string)

	if !models.IsValidMessageType(request.Type) {
		fields["type"] = "invalid message type"
	}
	if request.Type == models.MessageTypeText {
		if request.Content == nil || strings.TrimSpace(*request.Content) == "" {
			fields["content"] = "message content is required for text messages"
		}
	}
	if request.Content != nil && len(*request.Content) > models.MaxMessageContentLength {
		fields["content"] = "message cannot exceed 5000 characters"
	}
	if models.MessageTypeRequiresMedia(request.Type) && mediaFile == nil {
		fields["media"] = "media file is required for this message type"
	}
	if mediaFile != nil && mediaFile.Size > models.MaxMediaFileSize {
		fields["media"] = "file size cannot exceed 10MB"
	}

	if len(fields) > 0 {
		return apiError.ValidationFailed(fields)
	}
	return nil
}

// SendMessage validates, persists the media blob (when present) under a
// conversation-scoped path, then creates the message row. A storage failure
// aborts the whole send; a row failure after a successful upload rolls the
// blob back.
func (s *messageService) SendMessage(user *models.User, conversationID uuid.UUID, request *models.SendMessageRequest, mediaFile *multipart.FileHeader) (*models.MessageResponse, *apiError.Error) {
	if apiErr := s.RequireMember(user.ID, conversationID); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateSend(request, mediaFile); apiErr != nil {
		return nil, apiErr
	}

	msg := &models.Message{
		ConversationID: conversationID,
		UserID:         user.ID,
		Content:        request.Content,
		Type:           request.Type,
	}

	if mediaFile != nil && models.MessageTypeRequiresMedia(request.Type) {
		media, apiErr := s.mediaService.StoreMessageMedia(mediaFile, conversationID)
		if apiErr != nil {
			return nil, apiErr
		}
		msg.Media = media
	}

	if err := s.messageRepo.CreateMessage(msg); err != nil {
		log.Printf("SendMessage error: %v", err)
		if msg.Media != nil {
			if rmErr := s.mediaService.Remove(msg.Media.Path); rmErr != nil {
				log.Printf("SendMessage: failed to roll back media %s: %v", msg.Media.Path, rmErr)
			}
		}
		return nil, apiError.ErrInternalServerError
	}

	response := newMessageResponse(msg, user.ID)
	if response.User.Name == "" {
		response.User.Name = user.Fullname
	}
	return &response, nil
}

// UpdateMessage edits the text content only; type and media stay untouched.
// Only the author may edit, regardless of conversation role.
func (s *messageService) UpdateMessage(userID uint, messageID uuid.UUID, content string) (*models.Message, *apiError.Error) {
	msg, err := s.messageRepo.FindMessageByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.NotFound("message")
		}
		log.Printf("UpdateMessage error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if msg.UserID != userID {
		return nil, apiError.Forbidden("you can only edit your own messages")
	}

	if strings.TrimSpace(content) == "" {
		return nil, apiError.FieldError("content", "message content is required")
	}
	if len(content) > models.MaxMessageContentLength {
		return nil, apiError.FieldError("content", "message cannot exceed 5000 characters")
	}

	now := time.Now()
	msg.Content = &content
	msg.IsEdited = true
	msg.EditedAt = &now

	if err := s.messageRepo.SaveMessage(msg); err != nil {
		log.Printf("UpdateMessage error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return msg, nil
}

// DeleteMessage releases the media blob before removing the row. A blob
// delete failure is logged but never blocks the row deletion.
func (s *messageService) DeleteMessage(userID uint, messageID uuid.UUID) *apiError.Error {
	msg, err := s.messageRepo.FindMessageByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.NotFound("message")
		}
		log.Printf("DeleteMessage error: %v", err)
		return apiError.ErrInternalServerError
	}

	if msg.UserID != userID {
		return apiError.Forbidden("you can only delete your own messages")
	}

	if msg.Media != nil && msg.Media.Path != "" {
		if err := s.mediaService.Remove(msg.Media.Path); err != nil {
			log.Printf("DeleteMessage: failed to delete media %s: %v", msg.Media.Path, err)
		}
	}

	if err := s.messageRepo.DeleteMessage(messageID); err != nil {
		log.Printf("DeleteMessage error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
