package handler

import (
	"FlashVault/internal/dto"
	"FlashVault/internal/service"
	"FlashVault/model"
	"FlashVault/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user and returns a token.
func Login(c *gin.Context) {
	var loginRequest dto.LoginRequest
	if err := c.ShouldBind(&loginRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	var user *model.User
	var err error
	if user, err = service.IsExist(loginRequest.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user does not exist"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account not activated"})
		return
	}
	if err = service.CheckPassword(loginRequest.Username, loginRequest.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wrong password"})
		return
	}
	token, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	utils.Success(c, dto.LoginResponse{Token: token, Username: user.UserName})
}
