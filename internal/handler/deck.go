package handler

import (
	"FlashVault/internal/dto"
	"FlashVault/internal/service"
	"FlashVault/model"
	"FlashVault/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateDeck creates a deck under a subject the user owns.
func CreateDeck(c *gin.Context) {
	subjectId, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.DeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	ownerId, err := service.SubjectOwnerID(subjectId)
	if !requireOwner(c, ownerId, err) {
		return
	}
	deck := model.Deck{
		Name:        req.Name,
		Description: req.Description,
		SubjectID:   subjectId,
	}
	if err := service.CreateDeck(&deck); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, deck)
}

// ListDecks lists the decks of a subject the user owns.
func ListDecks(c *gin.Context) {
	subjectId, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.SubjectOwnerID(subjectId)
	if !requireOwner(c, ownerId, err) {
		return
	}
	decks, err := service.ListDecksBySubject(subjectId)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, decks)
}

// GetDeck returns one deck the user owns.
func GetDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.DeckOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	deck, err := service.GetDeck(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, deck)
}

// UpdateDeck updates a deck's name and description.
func UpdateDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.DeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	ownerId, err := service.DeckOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	if err := service.UpdateDeck(id, req.Name, req.Description); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"id": id, "name": req.Name, "description": req.Description})
}

// DeleteDeck deletes a deck and its cards.
func DeleteDeck(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.DeckOwnerID(id)
	if !requireOwner(c, ownerId, err) {
		return
	}
	if err := service.DeleteDeck(id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
