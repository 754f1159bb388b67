package service

import (
	"FlashVault/internal/pipeline"
	"FlashVault/internal/repo"
	"FlashVault/internal/transcode"
	"FlashVault/model"
	"context"
)

// GetProfileByUserID finds a user's profile.
func GetProfileByUserID(userId uint64) (*model.Profile, error) {
	var profile model.Profile
	if err := repo.Db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfileImage pushes a new profile picture through the pipeline at the
// profile bound and rewrites the profile's image reference. Pictures already
// within the bound are stored untouched in their original format.
func SaveProfileImage(ctx context.Context, userId uint64, username, filename string, raw []byte) (*model.Profile, error) {
	profile, err := GetProfileByUserID(userId)
	if err != nil {
		return nil, err
	}
	key, err := pipeline.ProcessProfile(ctx, username, filename, raw, transcode.ProfileBound())
	if err != nil {
		return nil, err
	}
	profile.Image = key
	if err := repo.Db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateUserNames updates the display name fields on the account.
func UpdateUserNames(userId uint64, firstName, lastName string) error {
	return repo.Db.Model(&model.User{}).Where("id = ?", userId).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
	}).Error
}
