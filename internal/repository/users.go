package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/utils"
)

// ErrBadCredentials covers both unknown usernames and wrong passwords so
// login responses cannot be used to probe for accounts.
var ErrBadCredentials = errors.New("invalid credentials")

// VerifyUser recomputes the PBKDF2 hash for the supplied password under
// the stored salt and returns the user record on a match.
func (r *Repository) VerifyUser(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(password, user.Salt, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

func (r *Repository) CreateUser(username, password, role string) (*models.User, error) {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(password, salt)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) ChangePassword(userID uint, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}
	salt, err := utils.GenerateSalt()
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword, salt)
	if err != nil {
		return err
	}
	res := r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"password_hash": hash, "salt": salt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}
