package handler

import (
	"FlashVault/internal/dto"
	"FlashVault/internal/service"
	"FlashVault/utils"

	"github.com/gin-gonic/gin"
)

// Quiz returns a deck's cards in a fresh random order.
func Quiz(c *gin.Context) {
	deckId, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ownerId, err := service.DeckOwnerID(deckId)
	if !requireOwner(c, ownerId, err) {
		return
	}
	cards, err := service.QuizCards(c.Request.Context(), deckId)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	resp := make([]dto.CardResponse, 0, len(cards))
	for i := range cards {
		resp = append(resp, dto.NewCardResponse(&cards[i]))
	}
	utils.Success(c, resp)
}
