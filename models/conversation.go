package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConversationTypePrivate = "private"
	ConversationTypeGroup   = "group"
)

// Conversation is a private or group messaging thread. Name is null for
// private chats; their display name is derived from the other member at read
// time and never stored.
type Conversation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        *string   `json:"name"`
	Type        string    `gorm:"type:varchar(10);not null;default:'private';index:idx_conversations_type_created,priority:1" json:"type"`
	Image       *string   `json:"image"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `gorm:"index:idx_conversations_type_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Memberships []ConversationMembership `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
	Messages    []Message                `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

func IsValidConversationType(t string) bool {
	return t == ConversationTypePrivate || t == ConversationTypeGroup
}

type CreateConversationRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Type        string  `json:"type" binding:"required,oneof=private group"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	UserIDs     []uint  `json:"user_ids" binding:"required,min=1"`
}

type UpdateConversationRequest struct {
	Name        *string `form:"name" binding:"omitempty,max=255"`
	Description *string `form:"description" binding:"omitempty,max=1000"`
}

// LatestMessagePreview is the single most recent message shown on the
// conversation list.
type LatestMessagePreview struct {
	Content   *string   `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
}

type MemberSummary struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type ConversationSummary struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Type          string                `json:"type"`
	Image         *string               `json:"image"`
	Members       []MemberSummary       `json:"members"`
	LatestMessage *LatestMessagePreview `json:"latest_message"`
	UnreadCount   int                   `json:"unread_count"`
}

type ConversationDetail struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Image       *string           `json:"image"`
	Description *string           `json:"description"`
	Members     []MemberSummary   `json:"members"`
	Messages    []MessageResponse `json:"messages"`
}
