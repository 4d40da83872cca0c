package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	errs "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"github.com/techagentng/chatter/server/response"
)

func parseConversationID(c *gin.Context) (uuid.UUID, *errs.Error) {
	id, err := uuid.Parse(c.Param("conversationID"))
	if err != nil {
		return uuid.Nil, errs.New("invalid conversation id", http.StatusBadRequest)
	}
	return id, nil
}

func (s *Server) handleListConversations() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		conversations, apiErr := s.ConversationService.ListConversations(user.ID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Conversations retrieved successfully", http.StatusOK, conversations, nil)
	}
}

func (s *Server) handleCreateConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		var request models.CreateConversationRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		conversation, apiErr := s.ConversationService.CreateConversation(user.ID, &request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Conversation created successfully", http.StatusCreated, gin.H{"id": conversation.ID}, nil)
	}
}

func (s *Server) handleShowConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		conversationID, apiErr := parseConversationID(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		detail, apiErr := s.ConversationService.ShowConversation(user.ID, conversationID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Conversation retrieved successfully", http.StatusOK, detail, nil)
	}
}

func (s *Server) handleUpdateConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		conversationID, apiErr := parseConversationID(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		var request models.UpdateConversationRequest
		if err := c.ShouldBind(&request); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		// image is optional multipart
		imageFile, _ := c.FormFile("image")

		conversation, apiErr := s.ConversationService.UpdateConversation(user.ID, conversationID, &request, imageFile)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Conversation updated successfully", http.StatusOK, conversation, nil)
	}
}

func (s *Server) handleDeleteConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		conversationID, apiErr := parseConversationID(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		if apiErr := s.ConversationService.DeleteConversation(user.ID, conversationID); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Conversation deleted successfully", http.StatusOK, nil, nil)
	}
}
