package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/techagentng/chatter/db"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

// membershipChecker is the single authorization policy for conversations:
// viewing and messaging require membership, conversation mutation requires
// the admin role. Message mutation is authorship-based and checked in the
// message service; conversation role plays no part there.
type membershipChecker struct {
	convRepo db.ConversationRepository
}

// RoleOf returns the user's role in the conversation, or "" when the user is
// not a member.
func (m *membershipChecker) RoleOf(userID uint, conversationID uuid.UUID) (string, error) {
	membership, err := m.convRepo.GetMembership(conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return membership.Role, nil
}

func (m *membershipChecker) IsMember(userID uint, conversationID uuid.UUID) (bool, error) {
	role, err := m.RoleOf(userID, conversationID)
	if err != nil {
		return false, err
	}
	return role != "", nil
}

// RequireMember short-circuits with Forbidden before any data exposure when
// the user does not belong to the conversation.
func (m *membershipChecker) RequireMember(userID uint, conversationID uuid.UUID) *apiError.Error {
	ok, err := m.IsMember(userID, conversationID)
	if err != nil {
		log.Printf("membership check failed: %v", err)
		return apiError.ErrInternalServerError
	}
	if !ok {
		return apiError.Forbidden("you are not part of this conversation")
	}
	return nil
}

// RequireAdmin short-circuits with Forbidden unless the user holds the admin
// role. The action name feeds the reason shown to the caller.
func (m *membershipChecker) RequireAdmin(userID uint, conversationID uuid.UUID, action string) *apiError.Error {
	role, err := m.RoleOf(userID, conversationID)
	if err != nil {
		log.Printf("role check failed: %v", err)
		return apiError.ErrInternalServerError
	}
	if role != models.RoleAdmin {
		return apiError.Forbidden(fmt.Sprintf("only admins can %s the conversation", action))
	}
	return nil
}
