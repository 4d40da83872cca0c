package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"github.com/techagentng/chatter/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		created, apiErr := s.AuthService.SignupUser(&user)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Signup successful", http.StatusCreated, created, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := c.ShouldBindJSON(&loginRequest); err != nil {
			apiErr := errs.FromBindingError(err)
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		loginResponse, apiErr := s.AuthService.LoginUser(&loginRequest)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetString("access_token")
		if apiErr := s.AuthService.LogoutUser(accessToken); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Logout successful", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, err)
			return
		}

		users, apiErr := s.AuthService.ListUsers(user.ID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Users retrieved successfully", http.StatusOK, users, nil)
	}
}
