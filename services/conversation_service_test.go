package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/mocks"
	"github.com/techagentng/chatter/models"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func membership(convID uuid.UUID, userID uint, role, name string) models.ConversationMembership {
	return models.ConversationMembership{
		ConversationID: convID,
		UserID:         userID,
		Role:           role,
		JoinedAt:       time.Now(),
		User: models.User{
			Model:    models.Model{ID: userID},
			Fullname: name,
			Email:    name + "@example.com",
		},
	}
}

func TestDisplayName(t *testing.T) {
	convID := uuid.New()

	t.Run("stored name always wins", func(t *testing.T) {
		conv := &models.Conversation{ID: convID, Name: strPtr("Team Chat"), Type: models.ConversationTypeGroup}
		require.Equal(t, "Team Chat", displayName(conv, 1))
	})

	t.Run("private conversation resolves to the other member's name", func(t *testing.T) {
		conv := &models.Conversation{
			ID:   convID,
			Type: models.ConversationTypePrivate,
			Memberships: []models.ConversationMembership{
				membership(convID, 1, models.RoleAdmin, "Alice"),
				membership(convID, 2, models.RoleMember, "Bob"),
			},
		}
		require.Equal(t, "Bob", displayName(conv, 1))
		require.Equal(t, "Alice", displayName(conv, 2))
	})

	t.Run("private conversation falls back when the other member cannot be resolved", func(t *testing.T) {
		conv := &models.Conversation{
			ID:   convID,
			Type: models.ConversationTypePrivate,
			Memberships: []models.ConversationMembership{
				membership(convID, 1, models.RoleAdmin, "Alice"),
			},
		}
		require.Equal(t, "Unknown User", displayName(conv, 1))
	})

	t.Run("unnamed group falls back to Group Chat", func(t *testing.T) {
		conv := &models.Conversation{ID: convID, Type: models.ConversationTypeGroup}
		require.Equal(t, "Group Chat", displayName(conv, 1))
	})
}

func TestConversationService_ListConversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	convID := uuid.New()
	viewer := uint(1)
	conv := models.Conversation{
		ID:   convID,
		Type: models.ConversationTypePrivate,
		Memberships: []models.ConversationMembership{
			membership(convID, viewer, models.RoleAdmin, "Alice"),
			membership(convID, 2, models.RoleMember, "Bob"),
		},
	}
	latest := &models.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		UserID:         2,
		Content:        strPtr("see you tomorrow"),
		Type:           models.MessageTypeText,
		CreatedAt:      time.Now(),
		User:           models.User{Model: models.Model{ID: 2}, Fullname: "Bob"},
	}

	convRepo.EXPECT().GetConversationsForUser(viewer).Return([]models.Conversation{conv}, nil)
	convRepo.EXPECT().GetLatestMessage(convID).Return(latest, nil)

	summaries, apiErr := svc.ListConversations(viewer)
	require.Nil(t, apiErr)
	require.Len(t, summaries, 1)
	require.Equal(t, "Bob", summaries[0].Name)
	require.Equal(t, 0, summaries[0].UnreadCount)
	require.Len(t, summaries[0].Members, 2)
	require.NotNil(t, summaries[0].LatestMessage)
	require.Equal(t, "see you tomorrow", *summaries[0].LatestMessage.Content)
	require.Equal(t, "Bob", summaries[0].LatestMessage.UserName)
}

func TestConversationService_ListConversations_NoMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	convID := uuid.New()
	conv := models.Conversation{ID: convID, Type: models.ConversationTypeGroup}

	convRepo.EXPECT().GetConversationsForUser(uint(1)).Return([]models.Conversation{conv}, nil)
	convRepo.EXPECT().GetLatestMessage(convID).Return(nil, gorm.ErrRecordNotFound)

	summaries, apiErr := svc.ListConversations(1)
	require.Nil(t, apiErr)
	require.Len(t, summaries, 1)
	require.Nil(t, summaries[0].LatestMessage)
	require.Equal(t, "Group Chat", summaries[0].Name)
}

func TestConversationService_CreateConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	creator := uint(1)

	t.Run("should reject an invalid type", func(t *testing.T) {
		_, apiErr := svc.CreateConversation(creator, &models.CreateConversationRequest{
			Type:    "broadcast",
			UserIDs: []uint{2},
		})
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		require.Contains(t, apiErr.Fields, "type")
	})

	t.Run("should reject an empty member list", func(t *testing.T) {
		_, apiErr := svc.CreateConversation(creator, &models.CreateConversationRequest{
			Type:    models.ConversationTypeGroup,
			UserIDs: []uint{},
		})
		require.NotNil(t, apiErr)
		require.Contains(t, apiErr.Fields, "user_ids")
	})

	t.Run("should reject unknown member ids", func(t *testing.T) {
		convRepo.EXPECT().CountUsers([]uint{2, 99}).Return(int64(1), nil)

		_, apiErr := svc.CreateConversation(creator, &models.CreateConversationRequest{
			Type:    models.ConversationTypeGroup,
			UserIDs: []uint{2, 99},
		})
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.Status)
	})

	t.Run("should surface a duplicate membership as conflict", func(t *testing.T) {
		convRepo.EXPECT().CountUsers([]uint{1}).Return(int64(1), nil)
		convRepo.EXPECT().
			CreateConversation(gomock.Any(), creator, []uint{1}).
			Return(gorm.ErrDuplicatedKey)

		_, apiErr := svc.CreateConversation(creator, &models.CreateConversationRequest{
			Type:    models.ConversationTypePrivate,
			UserIDs: []uint{1},
		})
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusConflict, apiErr.Status)
	})

	t.Run("should create a group with creator as admin", func(t *testing.T) {
		convRepo.EXPECT().CountUsers([]uint{2, 3}).Return(int64(2), nil)
		convRepo.EXPECT().
			CreateConversation(gomock.Any(), creator, []uint{2, 3}).
			DoAndReturn(func(conv *models.Conversation, _ uint, _ []uint) error {
				conv.ID = uuid.New()
				return nil
			})

		conv, apiErr := svc.CreateConversation(creator, &models.CreateConversationRequest{
			Name:        strPtr("Team Chat"),
			Type:        models.ConversationTypeGroup,
			Description: strPtr("Our team discussion"),
			UserIDs:     []uint{2, 3},
		})
		require.Nil(t, apiErr)
		require.NotEqual(t, uuid.Nil, conv.ID)
		require.Equal(t, "Team Chat", *conv.Name)
		require.Equal(t, "Our team discussion", *conv.Description)
	})
}

func TestConversationService_ShowConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	convID := uuid.New()
	conv := &models.Conversation{
		ID:          convID,
		Name:        strPtr("Team Chat"),
		Type:        models.ConversationTypeGroup,
		Description: strPtr("Our team discussion"),
		Memberships: []models.ConversationMembership{
			membership(convID, 1, models.RoleAdmin, "Alice"),
			membership(convID, 2, models.RoleMember, "Bob"),
		},
	}

	t.Run("should return not found for an unknown conversation", func(t *testing.T) {
		convRepo.EXPECT().FindConversationByID(convID).Return(nil, gorm.ErrRecordNotFound)

		_, apiErr := svc.ShowConversation(1, convID)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.Status)
	})

	t.Run("should forbid a non-member regardless of other permissions", func(t *testing.T) {
		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		_, apiErr := svc.ShowConversation(7, convID)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should return the detail with ordered messages and own flags", func(t *testing.T) {
		first := models.Message{
			ID:             uuid.New(),
			ConversationID: convID,
			UserID:         1,
			Content:        strPtr("morning"),
			Type:           models.MessageTypeText,
			CreatedAt:      time.Now().Add(-time.Hour),
			User:           models.User{Model: models.Model{ID: 1}, Fullname: "Alice"},
		}
		second := models.Message{
			ID:             uuid.New(),
			ConversationID: convID,
			UserID:         2,
			Content:        strPtr("morning to you"),
			Type:           models.MessageTypeText,
			CreatedAt:      time.Now(),
			User:           models.User{Model: models.Model{ID: 2}, Fullname: "Bob"},
		}

		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(1)).Return(&conv.Memberships[0], nil)
		messageRepo.EXPECT().GetConversationMessages(convID).Return([]models.Message{first, second}, nil)

		detail, apiErr := svc.ShowConversation(1, convID)
		require.Nil(t, apiErr)
		require.Equal(t, "Team Chat", detail.Name)
		require.Equal(t, "Our team discussion", *detail.Description)
		require.Len(t, detail.Messages, 2)
		require.True(t, detail.Messages[0].IsOwn)
		require.False(t, detail.Messages[1].IsOwn)
		require.Equal(t, "Bob", detail.Messages[1].User.Name)

		var creatorSummary *models.MemberSummary
		for i := range detail.Members {
			if detail.Members[i].ID == 1 {
				creatorSummary = &detail.Members[i]
			}
		}
		require.NotNil(t, creatorSummary)
		require.Equal(t, models.RoleAdmin, creatorSummary.Role)
	})
}

func TestConversationService_UpdateConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	convID := uuid.New()

	t.Run("should forbid a plain member", func(t *testing.T) {
		conv := &models.Conversation{ID: convID, Type: models.ConversationTypeGroup}
		member := membership(convID, 2, models.RoleMember, "Bob")

		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(2)).Return(&member, nil)

		_, apiErr := svc.UpdateConversation(2, convID, &models.UpdateConversationRequest{Name: strPtr("New")}, nil)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should let an admin update name and description", func(t *testing.T) {
		conv := &models.Conversation{ID: convID, Type: models.ConversationTypeGroup, Name: strPtr("Old")}
		admin := membership(convID, 1, models.RoleAdmin, "Alice")

		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(1)).Return(&admin, nil)
		convRepo.EXPECT().UpdateConversation(gomock.Any()).Return(nil)

		updated, apiErr := svc.UpdateConversation(1, convID, &models.UpdateConversationRequest{
			Name:        strPtr("New"),
			Description: strPtr("fresh description"),
		}, nil)
		require.Nil(t, apiErr)
		require.Equal(t, "New", *updated.Name)
		require.Equal(t, "fresh description", *updated.Description)
		// type is immutable post-creation
		require.Equal(t, models.ConversationTypeGroup, updated.Type)
	})
}

func TestConversationService_DeleteConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	convRepo := mocks.NewMockConversationRepository(ctrl)
	messageRepo := mocks.NewMockMessageRepository(ctrl)
	mediaService := mocks.NewMockMediaService(ctrl)
	svc := NewConversationService(convRepo, messageRepo, mediaService, &config.Config{})

	convID := uuid.New()
	conv := &models.Conversation{ID: convID, Type: models.ConversationTypeGroup}

	t.Run("should forbid a plain member", func(t *testing.T) {
		member := membership(convID, 2, models.RoleMember, "Bob")

		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(2)).Return(&member, nil)

		apiErr := svc.DeleteConversation(2, convID)
		require.NotNil(t, apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("should let an admin delete", func(t *testing.T) {
		admin := membership(convID, 1, models.RoleAdmin, "Alice")

		convRepo.EXPECT().FindConversationByID(convID).Return(conv, nil)
		convRepo.EXPECT().GetMembership(convID, uint(1)).Return(&admin, nil)
		convRepo.EXPECT().DeleteConversation(convID).Return(nil)

		apiErr := svc.DeleteConversation(1, convID)
		require.Nil(t, apiErr)
	})
}
