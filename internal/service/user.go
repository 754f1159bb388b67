package service

import (
	"FlashVault/config"
	"FlashVault/internal/repo"
	"FlashVault/model"
	"FlashVault/utils"
	"errors"
)

// CreateUser hashes the password, creates the user and its profile row.
// The profile starts on the default image sentinel; no image processing runs
// until the user actually uploads a picture.
func CreateUser(user *model.User) error {
	user.Password = utils.GetPwd(user.Password)
	if err := repo.Db.Create(user).Error; err != nil {
		return err
	}
	profile := &model.Profile{
		UserID: user.ID,
		Image:  config.MediaConfigInstance.DefaultProfileImage,
	}
	if err := repo.Db.Create(profile).Error; err != nil {
		_ = repo.Db.Unscoped().Delete(user).Error
		return err
	}
	return nil
}

// IsExist checks whether a user exists.
func IsExist(username string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Model(&model.User{}).Where("user_name = ?", username).First(&user).Error; err != nil {
		return &model.User{}, err
	}
	return &user, nil
}

// CheckPassword verifies a user's password.
func CheckPassword(username, password string) error {
	var user model.User
	if err := repo.Db.Model(&model.User{}).Where("user_name = ?", username).First(&user).Error; err != nil {
		return err
	}
	if !utils.CheckPwd(password, user.Password) {
		return errors.New("password error")
	}
	return nil
}

// IsEmailExist checks whether an email exists.
func IsEmailExist(email string) error {
	var user model.User
	if err := repo.Db.Model(&model.User{}).Where("email = ?", email).First(&user).Error; err != nil {
		return err
	}
	return nil
}
