package services

import (
	"bytes"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/techagentng/chatter/db"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
)

//go:generate mockgen -source=media_service.go -destination=../mocks/media_service_mock.go -package=mocks

const (
	// MaxConversationImageSize bounds group image uploads (2 MiB).
	MaxConversationImageSize = 2 * 1024 * 1024
	// conversationImageWidth is the stored rendition width for group images.
	conversationImageWidth = 512
)

// MediaService stores and removes message media and conversation images in
// the blob store and returns the store-relative path kept on the row.
type MediaService interface {
	StoreMessageMedia(mediaFile *multipart.FileHeader, conversationID uuid.UUID) (*models.MessageMedia, *apiError.Error)
	StoreConversationImage(imageFile *multipart.FileHeader) (string, *apiError.Error)
	Remove(path string) error
}

type mediaService struct {
	mediaRepo db.MediaRepository
}

func NewMediaService(mediaRepo db.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

func generateUniqueFilename(extension string) string {
	timestamp := time.Now().UnixNano()
	randomUUID := uuid.New()
	return fmt.Sprintf("%d_%s%s", timestamp, randomUUID, extension)
}

// StoreMessageMedia uploads a message attachment under a conversation-scoped
// key. The mime type is sniffed from the content, not trusted from the client.
func (m *mediaService) StoreMessageMedia(mediaFile *multipart.FileHeader, conversationID uuid.UUID) (*models.MessageMedia, *apiError.Error) {
	file, err := mediaFile.Open()
	if err != nil {
		log.Printf("StoreMessageMedia: failed to open upload: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	defer file.Close()

	mime, err := mimetype.DetectReader(file)
	if err != nil {
		log.Printf("StoreMessageMedia: failed to sniff mime type: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if _, err := file.Seek(0, 0); err != nil {
		log.Printf("StoreMessageMedia: failed to rewind upload: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	key := fmt.Sprintf("messages/%s/%s", conversationID, generateUniqueFilename(filepath.Ext(mediaFile.Filename)))
	path, err := m.mediaRepo.PutObject(file, key, mime.String())
	if err != nil {
		log.Printf("StoreMessageMedia: upload failed: %v", err)
		return nil, apiError.StorageFailure()
	}

	return &models.MessageMedia{
		Path:         path,
		OriginalName: mediaFile.Filename,
		MimeType:     mime.String(),
		Size:         mediaFile.Size,
	}, nil
}

// StoreConversationImage validates that the upload decodes as an image,
// downsizes it to the stored rendition and uploads it as jpeg.
func (m *mediaService) StoreConversationImage(imageFile *multipart.FileHeader) (string, *apiError.Error) {
	if imageFile.Size > MaxConversationImageSize {
		return "", apiError.FieldError("image", "image size cannot exceed 2MB")
	}

	file, err := imageFile.Open()
	if err != nil {
		log.Printf("StoreConversationImage: failed to open upload: %v", err)
		return "", apiError.ErrInternalServerError
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return "", apiError.FieldError("image", "please upload a valid image file")
	}

	if img.Bounds().Dx() > conversationImageWidth {
		img = resize.Resize(conversationImageWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		log.Printf("StoreConversationImage: failed to encode image: %v", err)
		return "", apiError.ErrInternalServerError
	}

	key := fmt.Sprintf("conversations/%s", generateUniqueFilename(".jpg"))
	path, err := m.mediaRepo.PutObject(&buf, key, "image/jpeg")
	if err != nil {
		log.Printf("StoreConversationImage: upload failed: %v", err)
		return "", apiError.New("failed to store image", http.StatusInternalServerError)
	}
	return path, nil
}

func (m *mediaService) Remove(path string) error {
	return m.mediaRepo.DeleteObject(path)
}
