package services

import (
	"errors"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrAdminAlreadyExists = errors.New("admin user with this username already exists")

// RegisterAdmin creates a console operator. The very first registration gets
// the admin role; later ones start as read-only viewers until promoted.
func RegisterAdmin(username, password string) (*models.AdminUser, error) {
	var existing models.AdminUser
	result := database.DB.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		return nil, ErrAdminAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var count int64
	database.DB.Model(&models.AdminUser{}).Count(&count)

	role := "viewer"
	if count == 0 {
		role = "admin"
	}

	admin := &models.AdminUser{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := database.DB.Create(admin).Error; err != nil {
		return nil, err
	}

	return admin, nil
}

func LoginAdmin(username, password string) (string, *models.AdminUser, error) {
	var admin models.AdminUser
	if err := database.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &admin, nil
}

func FindAdminByID(id uint) (models.AdminUser, error) {
	var admin models.AdminUser
	if err := database.DB.First(&admin, id).Error; err != nil {
		return admin, err
	}
	return admin, nil
}
