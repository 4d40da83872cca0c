package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/chatter/models"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repository.go -destination=../mocks/auth_repository_mock.go -package=mocks

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	IsEmailExist(email string) (bool, error)
	FindUsersExcept(userID uint) ([]models.User, error)
	AddToBlacklist(token string) error
	IsTokenInBlacklist(token string) bool
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if err := a.DB.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "could not create user")
	}
	return user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := a.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) IsEmailExist(email string) (bool, error) {
	var count int64
	if err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "could not check email")
	}
	return count > 0, nil
}

// FindUsersExcept returns every user except the given one, for the new
// conversation member picker.
func (a *authRepo) FindUsersExcept(userID uint) ([]models.User, error) {
	var users []models.User
	if err := a.DB.Where("id != ?", userID).Order("fullname asc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "could not list users")
	}
	return users, nil
}

func (a *authRepo) AddToBlacklist(token string) error {
	return a.DB.Create(&models.Blacklist{Token: token}).Error
}

func (a *authRepo) IsTokenInBlacklist(token string) bool {
	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", token).Count(&count)
	return count > 0
}
