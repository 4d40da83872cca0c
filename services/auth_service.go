package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/samber/lo"
	"github.com/techagentng/chatter/config"
	"github.com/techagentng/chatter/db"
	apiError "github.com/techagentng/chatter/errors"
	"github.com/techagentng/chatter/models"
	"github.com/techagentng/chatter/services/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=../mocks/auth_service_mock.go -package=mocks

// AuthService interface
type AuthService interface {
	SignupUser(user *models.User) (*models.User, *apiError.Error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	ListUsers(userID uint) ([]models.UserResponse, *apiError.Error)
	LogoutUser(accessToken string) *apiError.Error
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (s *authService) SignupUser(user *models.User) (*models.User, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(user); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.FieldError("password", err.Error())
	}

	exists, err := s.authRepo.IsEmailExist(user.Email)
	if err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if exists {
		return nil, apiError.Conflict("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""

	created, err := s.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

func (s *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	user, err := s.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
		}
		log.Printf("LoginUser error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if err := user.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.New("invalid email or password", http.StatusUnauthorized)
	}

	accessToken, err := jwt.GenerateToken(user.ID, s.Config.JWTSecret)
	if err != nil {
		log.Printf("LoginUser error generating token: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: models.UserResponse{
			ID:       user.ID,
			Fullname: user.Fullname,
			Username: user.Username,
			Email:    user.Email,
		},
		AccessToken: accessToken,
	}, nil
}

// ListUsers returns every user except the caller, for the new conversation
// member picker.
func (s *authService) ListUsers(userID uint) ([]models.UserResponse, *apiError.Error) {
	users, err := s.authRepo.FindUsersExcept(userID)
	if err != nil {
		log.Printf("ListUsers error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return lo.Map(users, func(u models.User, _ int) models.UserResponse {
		return models.UserResponse{
			ID:       u.ID,
			Fullname: u.Fullname,
			Username: u.Username,
			Email:    u.Email,
		}
	}), nil
}

func (s *authService) LogoutUser(accessToken string) *apiError.Error {
	if err := s.authRepo.AddToBlacklist(accessToken); err != nil {
		log.Printf("LogoutUser error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
