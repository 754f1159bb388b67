package handler

import (
	"FlashVault/internal/dto"
	"FlashVault/internal/service"
	"FlashVault/model"
	"FlashVault/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateSubject creates a subject owned by the authenticated user.
func CreateSubject(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	subject := model.Subject{
		Name:      req.Name,
		CreatorID: currentUserID(c),
	}
	if err := service.CreateSubject(&subject); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, subject)
}

// ListSubjects lists the authenticated user's subjects.
func ListSubjects(c *gin.Context) {
	subjects, err := service.ListSubjectsByCreator(currentUserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, subjects)
}

// GetSubject returns one subject the user owns.
func GetSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.SubjectOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	subject, err := service.GetSubject(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, subject)
}

// UpdateSubject renames a subject the user owns.
func UpdateSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	ownerId, err := service.SubjectOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	if err := service.UpdateSubjectName(id, req.Name); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"id": id, "name": req.Name})
}

// DeleteSubject deletes a subject and, via cascade, its decks and cards.
func DeleteSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.SubjectOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	if err := service.DeleteSubject(id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
