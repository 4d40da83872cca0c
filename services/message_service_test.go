package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/chatter/config"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/mocks"
	"github.com/techagentng/chatter/models"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("media", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["media"][0]
}

func TestMessageService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewMessageService(messageRepo, convRepo, mediaService, &config.Config{})

	convID := uuid.New()
	sender := &models.User{Model: models.Model{ID: 1}, Fullname: "Alice"}
	senderMembership := membership(convID, sender.ID, models.RoleMember, "Alice")

	t.Run("should forbid a non-member before any side effect", func(t *testing.T) {
		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(nil, gorm.ErrRecordNotFound)

		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Content: strPtr("hi"),
			Type:    models.MessageTypeText,
		}, nil)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should reject a text message with blank content", func(t *testing.T) {
		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)

		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Content: strPtr("   "),
			Type:    models.MessageTypeText,
		}, nil)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		require.Contains(t, apiErr.Fields, "content")
	})

	t.Run("should reject content over the length bound", func(t *testing.T) {
		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)

		long := strings.Repeat("a", models.MaxMessageContentLength+1)
		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Content: &long,
			Type:    models.MessageTypeText,
		}, nil)
		require.NotNil(t, apiErr)
		require.Contains(t, apiErr.Fields, "content")
	})

	t.Run("should reject an image message without a file", func(t *testing.T) {
		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)

		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Type: models.MessageTypeImage,
		}, nil)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		require.Contains(t, apiErr.Fields, "media")
	})

	t.Run("should send a text message", func(t *testing.T) {
		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)
		messageRepo.EXPECT().
			CreateMessage(gomock.Any()).
			DoAndReturn(func(msg *models.Message) error {
				msg.ID = uuid.New()
				msg.CreatedAt = time.Now()
				msg.User = *sender
				return nil
			})

		response, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Content: strPtr("Hello, world! 👋"),
			Type:    models.MessageTypeText,
		}, nil)
		require.Nil(t, apiErr)
		require.Equal(t, "Hello, world! 👋", *response.Content)
		require.Equal(t, models.MessageTypeText, response.Type)
		require.True(t, response.IsOwn)
		require.False(t, response.IsEdited)
		require.Equal(t, "Alice", response.User.Name)
	})

	t.Run("should store media before creating the row", func(t *testing.T) {
		file := newTestFileHeader(t, "photo.png", []byte("png bytes"))
		media := &models.MessageMedia{
			Path:         "messages/" + convID.String() + "/photo.png",
			OriginalName: "photo.png",
			MimeType:     "image/png",
			Size:         9,
		}

		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)
		mediaService.EXPECT().StoreMessageMedia(file, convID).Return(media, nil)
		messageRepo.EXPECT().
			CreateMessage(gomock.Any()).
			DoAndReturn(func(msg *models.Message) error {
				require.Equal(t, media, msg.Media)
				msg.ID = uuid.New()
				msg.User = *sender
				return nil
			})

		response, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Type: models.MessageTypeImage,
		}, file)
		require.Nil(t, apiErr)
		require.Equal(t, media, response.Media)
	})

	t.Run("should abort the send when storage fails", func(t *testing.T) {
		file := newTestFileHeader(t, "clip.mp4", []byte("mp4 bytes"))

		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)
		mediaService.EXPECT().StoreMessageMedia(file, convID).Return(nil, &apiError.Error{Message: "unable to store media", Status: http.StatusInternalServerError})

		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Type: models.MessageTypeVideo,
		}, file)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	})

	t.Run("should roll the blob back when the row create fails", func(t *testing.T) {
		file := newTestFileHeader(t, "doc.pdf", []byte("pdf bytes"))
		media := &models.MessageMedia{Path: "messages/" + convID.String() + "/doc.pdf"}

		convRepo.EXPECT().GetMembership(convID, sender.ID).Return(&senderMembership, nil)
		mediaService.EXPECT().StoreMessageMedia(file, convID).Return(media, nil)
		messageRepo.EXPECT().CreateMessage(gomock.Any()).Return(errors.New("insert failed"))
		mediaService.EXPECT().Remove(media.Path).Return(nil)

		_, apiErr := svc.SendMessage(sender, convID, &models.SendMessageRequest{
			Type: models.MessageTypeFile,
		}, file)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	})
}

func TestMessageService_UpdateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewMessageService(messageRepo, convRepo, mediaService, &config.Config{})

	messageID := uuid.New()
	original := func() *models.Message {
		return &models.Message{
			ID:      messageID,
			UserID:  1,
			Content: strPtr("original"),
			Type:    models.MessageTypeText,
		}
	}

	t.Run("should return not found for an unknown message", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(nil, gorm.ErrRecordNotFound)

		_, apiErr := svc.UpdateMessage(1, messageID, "edited")
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.Status)
	})

	t.Run("should forbid editing someone else's message", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(original(), nil)

		_, apiErr := svc.UpdateMessage(2, messageID, "edited")
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should reject blank content", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(original(), nil)

		_, apiErr := svc.UpdateMessage(1, messageID, "  ")
		require.NotNil(t, apiErr)
		require.Contains(t, apiErr.Fields, "content")
	})

	t.Run("should mark the message edited", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(original(), nil)
		messageRepo.EXPECT().SaveMessage(gomock.Any()).Return(nil)

		updated, apiErr := svc.UpdateMessage(1, messageID, "edited")
		require.Nil(t, apiErr)
		require.Equal(t, "edited", *updated.Content)
		require.True(t, updated.IsEdited)
		require.NotNil(t, updated.EditedAt)
		require.WithinDuration(t, time.Now(), *updated.EditedAt, time.Second)
		require.Equal(t, models.MessageTypeText, updated.Type)
	})
}

func TestMessageService_DeleteMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewMessageService(messageRepo, convRepo, mediaService, &config.Config{})

	messageID := uuid.New()

	t.Run("should forbid deleting someone else's message", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(&models.Message{ID: messageID, UserID: 1}, nil)

		apiErr := svc.DeleteMessage(2, messageID)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should delete the media blob before the row", func(t *testing.T) {
		media := &models.MessageMedia{Path: "messages/abc/photo.png"}
		messageRepo.EXPECT().FindMessageByID(messageID).Return(&models.Message{ID: messageID, UserID: 1, Media: media}, nil)

		gomock.InOrder(
			mediaService.EXPECT().Remove(media.Path).Return(nil),
			messageRepo.EXPECT().DeleteMessage(messageID).Return(nil),
		)

		require.Nil(t, svc.DeleteMessage(1, messageID))
	})

	t.Run("should still delete the row when the blob delete fails", func(t *testing.T) {
		media := &models.MessageMedia{Path: "messages/abc/photo.png"}
		messageRepo.EXPECT().FindMessageByID(messageID).Return(&models.Message{ID: messageID, UserID: 1, Media: media}, nil)
		mediaService.EXPECT().Remove(media.Path).Return(errors.New("s3 unavailable"))
		messageRepo.EXPECT().DeleteMessage(messageID).Return(nil)

		require.Nil(t, svc.DeleteMessage(1, messageID))
	})

	t.Run("should delete a text message without touching storage", func(t *testing.T) {
		messageRepo.EXPECT().FindMessageByID(messageID).Return(&models.Message{ID: messageID, UserID: 1}, nil)
		messageRepo.EXPECT().DeleteMessage(messageID).Return(nil)

		require.Nil(t, svc.DeleteMessage(1, messageID))
	})
}
