package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// ConversationMembership joins a user to a conversation with a role. The
// (conversation_id, user_id) pair is unique; attaching the same user twice
// surfaces as a conflict.
//
// LastReadAt is persisted but not consumed by any read path yet; unread
// counts are reported as zero until read tracking lands.
type ConversationMembership struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ConversationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_user,priority:1" json:"conversation_id"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_conversation_user,priority:2" json:"user_id"`
	Role           string     `gorm:"type:varchar(10);not null;default:'member'" json:"role"`
	JoinedAt       time.Time  `json:"joined_at"`
	LastReadAt     *time.Time `json:"last_read_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
