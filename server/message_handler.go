package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	errs "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"github.com/techagentng/chatter/server/response"
)

func parseMessageID(c *gin.Context) (uuid.UUID, *errs.Error) {
	id, err := uuid.Parse(c.Param("messageID"))
	if err != nil {
		return uuid.Nil, errs.New("invalid message id", http.StatusBadRequest)
	}
	return id, nil
}

func (s *Server) handleSendMessage() gin.HandlerFunc {
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

		var request models.SendMessageRequest
		if err := c.ShouldBind(&request); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		// media is optional multipart; validated against type in the service
		mediaFile, _ := c.FormFile("media")

		message, apiErr := s.MessageService.SendMessage(user, conversationID, &request, mediaFile)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Message sent successfully", http.StatusCreated, message, nil)
	}
}

func (s *Server) handleUpdateMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		messageID, apiErr := parseMessageID(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		var request models.UpdateMessageRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		message, apiErr := s.MessageService.UpdateMessage(user.ID, messageID, request.Content)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Message updated successfully", http.StatusOK, message, nil)
	}
}

func (s *Server) handleDeleteMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		messageID, apiErr := parseMessageID(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		if apiErr := s.MessageService.DeleteMessage(user.ID, messageID); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Message deleted successfully", http.StatusOK, nil, nil)
	}
}
