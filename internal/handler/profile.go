package handler

import (
	"FlashVault/internal/dto"
	"FlashVault/internal/pipeline"
	"FlashVault/internal/service"
	"FlashVault/internal/transcode"
	"FlashVault/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile.
func GetProfile(c *gin.Context) {
	username := c.MustGet("username").(string)
	user, err := service.IsExist(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	profile, err := service.GetProfileByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	utils.Success(c, dto.ProfileResponse{
		Username:  user.UserName,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Image:     profile.Image,
	})
}

// UpdateProfile updates the user's names and optionally replaces the
// profile image from a multipart upload.
func UpdateProfile(c *gin.Context) {
	username := c.MustGet("username").(string)
	user, err := service.IsExist(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	firstName, hasFirst := c.GetPostForm("first_name")
	lastName, hasLast := c.GetPostForm("last_name")
	if hasFirst || hasLast {
		if !hasFirst {
			firstName = user.FirstName
		}
		if !hasLast {
			lastName = user.LastName
		}
		if err := service.UpdateUserNames(user.ID, firstName, lastName); err != nil {
			utils.Fail(c, err)
			return
		}
		user.FirstName = firstName
		user.LastName = lastName
	}

	upload, err := readFaceUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var image string
	if upload != nil {
		profile, err := service.SaveProfileImage(c.Request.Context(), user.ID, user.UserName, upload.Filename, upload.Data)
		if err != nil {
			if errors.Is(err, pipeline.ErrBadFilename) || errors.Is(err, transcode.ErrDecode) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		image = profile.Image
	} else {
		profile, err := service.GetProfileByUserID(user.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		image = profile.Image
	}

	utils.Success(c, dto.ProfileResponse{
		Username:  user.UserName,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Image:     image,
	})
}
