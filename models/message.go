package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeText    = "text"
	MessageTypeImage   = "image"
	MessageTypeVideo   = "video"
	MessageTypeFile    = "file"
	MessageTypeSticker = "sticker"
	MessageTypeGif     = "gif"
)

const (
	// MaxMessageContentLength bounds the text content of a message.
	MaxMessageContentLength = 5000
	// MaxMediaFileSize bounds uploaded message media (10 MiB).
	MaxMediaFileSize = 10 * 1024 * 1024
)

func IsValidMessageType(t string) bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeFile, MessageTypeSticker, MessageTypeGif:
		return true
	}
	return false
}

// MessageTypeRequiresMedia reports whether a message type carries a file.
func MessageTypeRequiresMedia(t string) bool {
	switch t {
	case MessageTypeImage, MessageTypeVideo, MessageTypeFile:
		return true
	}
	return false
}

// MessageMedia is the stored metadata for an uploaded file, serialized into
// the messages.media jsonb column. Path is the store-relative key; resolving
// it to a URL is the presentation layer's job.
type MessageMedia struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

func (m MessageMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MessageMedia) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for MessageMedia: %T", value)
	}
}

// Message belongs to exactly one conversation and one author. Author identity
// is immutable after creation; only the author may edit or delete it.
type Message struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID     `gorm:"type:uuid;not null;index:idx_messages_conversation_created,priority:1" json:"conversation_id"`
	UserID         uint          `gorm:"not null;index" json:"user_id"`
	Content        *string       `gorm:"type:text" json:"content"`
	Type           string        `gorm:"type:varchar(10);not null;default:'text';index" json:"type"`
	Media          *MessageMedia `gorm:"type:jsonb" json:"media"`
	IsEdited       bool          `gorm:"default:false" json:"is_edited"`
	EditedAt       *time.Time    `json:"edited_at"`
	CreatedAt      time.Time     `gorm:"index:idx_messages_conversation_created,priority:2" json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

type SendMessageRequest struct {
	Content *string `form:"content" binding:"omitempty,max=5000"`
	Type    string  `form:"type" binding:"required,oneof=text image video file sticker gif"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type MessageAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MessageResponse struct {
	ID        uuid.UUID     `json:"id"`
	Content   *string       `json:"content"`
	Type      string        `json:"type"`
	Media     *MessageMedia `json:"media"`
	IsEdited  bool          `json:"is_edited"`
	EditedAt  *time.Time    `json:"edited_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	User      MessageAuthor `json:"user"`
	IsOwn     bool          `json:"is_own"`
}
